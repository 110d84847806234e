// Package openai implements the ai collaborator contracts against any
// OpenAI-compatible chat completion API (Ollama, LocalAI, vLLM, OpenAI).
package openai
