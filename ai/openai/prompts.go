package openai

import "fmt"

const answerSystemPrompt = `You are the assistant of a college admissions office. Answer the user's question
directly and concisely using ONLY the information in the provided context. Do not invent facts that are not
in the context. If the context does not cover the question, say so briefly. Respond with plain text, no
markdown headings.`

const suggestionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "suggested_questions": {
      "type": "array",
      "items": {
        "type": "string"
      }
    }
  },
  "required": ["suggested_questions"],
  "additionalProperties": false
}`

const suggestionPromptTemplate = `Given the question a prospective student just asked and the answer they
received, propose up to %d short follow-up questions they are likely to ask next, and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Questions must be about college topics: admissions, programs, fees, placements, internships, facilities.
- Each question must be a single sentence ending with a question mark.
- Do not repeat the question the student already asked.
- If no sensible follow-ups exist, return "suggested_questions": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

func buildSuggestionPrompt(maxSuggestions int) string {
	return fmt.Sprintf(suggestionPromptTemplate, maxSuggestions, suggestionResponseSchema)
}

func buildAnswerInput(question, knowledge string) string {
	return fmt.Sprintf("Context:\n%s\n\nQuestion: %s", knowledge, question)
}

func buildSuggestionInput(question, previousAnswer string) string {
	return fmt.Sprintf("Question: %s\n\nAnswer they received:\n%s", question, previousAnswer)
}
