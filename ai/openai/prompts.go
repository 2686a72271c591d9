package openai

import (
	"fmt"
	"strings"
)

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "summary": {
      "type": "string"
    },
    "atomic_knowledge": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {"type": "string"},
          "is_ask": {"type": "boolean"}
        },
        "required": ["text", "is_ask"],
        "additionalProperties": false
      }
    },
    "topics": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"}
        },
        "required": ["name"],
        "additionalProperties": false
      }
    }%s
  },
  "required": ["summary", "atomic_knowledge", "topics"],
  "additionalProperties": false
}`

const intentionsSchemaFragment = `,
    "intentions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"}
        },
        "required": ["name"],
        "additionalProperties": false
      }
    }`

const extractionPromptTemplate = `You analyze a single user-authored note and derive structured knowledge from it.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "summary" is one or two sentences restating what the note says, in the third person.
- "atomic_knowledge" holds discrete statements, one fact or request each. Set "is_ask" to true when the
  statement expresses a request, need, or something the author is looking for; false for plain facts.
- "topics" names the subjects the note is about: short noun phrases, 1-3 words, title case. Give each a
  one-sentence description.%s
- Include only statements and topics that are explicitly present or clearly implied. Do not hallucinate.
- If the note contains no extractable knowledge, return empty arrays.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Looking for a co-founder for a climate app"
Output:
{
  "summary": "Seeking a co-founder for a climate-focused app",
  "atomic_knowledge": [
    {"text": "The author is looking for a co-founder for a climate app", "is_ask": true}
  ],
  "topics": [
    {"name": "Climate Tech", "description": "Technology addressing climate change"}
  ]%s
}`

const intentionsRuleFragment = `
- "intentions" names what the author is trying to accomplish: short verb or noun phrases with a
  one-sentence description.`

const intentionsExampleFragment = `,
  "intentions": [
    {"name": "Find Cofounder", "description": "Recruiting a founding partner"}
  ]`

const askTopicsResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "topics": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"}
        },
        "required": ["name"],
        "additionalProperties": false
      }
    }
  },
  "required": ["topics"],
  "additionalProperties": false
}`

const askTopicsPromptTemplate = `You are given request statements ("asks") extracted from a user's note, plus the
topics already identified for that note. Name additional topics that the asks imply but the existing list misses.

Output ONLY valid JSON which complies with this schema. Start with { and end with }:

%s

Rules:
- Topics are short noun phrases, 1-3 words, title case, each with a one-sentence description.
- Do not repeat any of the known topics, including close rephrasings of them.
- Only name topics a reader would need in order to route or answer the asks.
- If the asks imply no additional topics, return "topics": [].

Known topics: %s`

// buildExtractionPrompt creates the system prompt for the primary
// extraction call. withIntentions selects the pipeline variant where the
// model also returns candidate intentions.
func buildExtractionPrompt(withIntentions bool) string {
	schemaFragment, ruleFragment, exampleFragment := "", "", ""
	if withIntentions {
		schemaFragment = intentionsSchemaFragment
		ruleFragment = intentionsRuleFragment
		exampleFragment = intentionsExampleFragment
	}
	schema := fmt.Sprintf(extractionResponseSchema, schemaFragment)
	return fmt.Sprintf(extractionPromptTemplate, schema, ruleFragment, exampleFragment)
}

// buildAskTopicsPrompt creates the system prompt for the secondary
// ask-topic mining call.
func buildAskTopicsPrompt(knownTopics []string) string {
	known := "(none)"
	if len(knownTopics) > 0 {
		known = strings.Join(knownTopics, ", ")
	}
	return fmt.Sprintf(askTopicsPromptTemplate, askTopicsResponseSchema, known)
}

const visionPromptTemplate = `Describe the image in two or three sentences, focusing on what it shows and any
readable text. Plain prose only, no preamble.%s`

// buildVisionPrompt creates the instruction for an image description call.
// hint is the surrounding note text, included as context when present.
func buildVisionPrompt(hint string) string {
	context := ""
	if strings.TrimSpace(hint) != "" {
		context = "\n\nThe image appears in a note that reads: " + strings.TrimSpace(hint)
	}
	return fmt.Sprintf(visionPromptTemplate, context)
}
