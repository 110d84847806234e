// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/collegewala/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Suggester implements ai.FollowUpSuggester using OpenAI-compatible chat APIs.
type Suggester struct {
	client         llms.Model
	maxSuggestions int
	logger         *slog.Logger
}

// suggestions is the wrapper structure for the LLM's JSON response.
type suggestions struct {
	SuggestedQuestions []string `json:"suggested_questions"`
}

// newSuggester is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSuggester(config *ai.Config) (*Suggester, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Suggester{
		client:         client,
		maxSuggestions: config.MaxSuggestions,
		logger:         slog.Default().With("component", "openai-suggester"),
	}, nil
}

// NewSuggester creates a new follow-up suggester using the provided configuration.
//
// Returns ai.FollowUpSuggester interface to enforce abstraction.
func NewSuggester(config *ai.Config) (ai.FollowUpSuggester, error) {
	return newSuggester(config)
}

// SuggestFollowUps produces related follow-up questions as a JSON list and
// parses it, repairing common formatting mistakes from small local models.
func (s *Suggester) SuggestFollowUps(ctx context.Context, question, previousAnswer string) ([]string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSuggestionPrompt(s.maxSuggestions)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSuggestionInput(question, previousAnswer)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result suggestions
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			s.logger.Error("failed to generate suggestions", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			s.logger.Debug("no choices returned from model")
			return []string{}, nil
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			s.logger.Warn("error parsing suggestion response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}
	if lastErr != nil {
		return nil, lastErr
	}

	cleaned := make([]string, 0, len(result.SuggestedQuestions))
	for _, q := range result.SuggestedQuestions {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		cleaned = append(cleaned, q)
		if len(cleaned) == s.maxSuggestions {
			break
		}
	}
	return cleaned, nil
}
