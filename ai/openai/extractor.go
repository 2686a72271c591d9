// Copyright 2025 Doelenia
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
	"errors"
	"log/slog"
	"strings"

	"github.com/doelenia/ausna-sub004/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// parseAttempts is how many times a malformed model response is re-requested
// before the call fails.
const parseAttempts = 3

// Extractor implements ai.Extractor using OpenAI-compatible chat APIs.
type Extractor struct {
	client         llms.Model
	withIntentions bool
	logger         *slog.Logger
}

// statement, entity and extraction mirror the JSON shape the model is
// instructed to produce.
type statement struct {
	Text  string `json:"text"`
	IsAsk bool   `json:"is_ask"`
}

type entity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type extraction struct {
	Summary         string      `json:"summary"`
	AtomicKnowledge []statement `json:"atomic_knowledge"`
	Topics          []entity    `json:"topics"`
	Intentions      []entity    `json:"intentions"`
}

type askTopics struct {
	Topics []entity `json:"topics"`
}

// newExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newExtractor(config *ai.Config) (*Extractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ExtractorHost),
		openai.WithToken("none"),
		openai.WithModel(config.ExtractorModel),
	)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		client:         client,
		withIntentions: config.ExtractIntentions,
		logger:         slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewExtractor creates a new knowledge extractor using the provided configuration.
//
// Returns ai.Extractor interface to enforce abstraction.
func NewExtractor(config *ai.Config) (ai.Extractor, error) {
	return newExtractor(config)
}

// ExtractNote derives the structured extraction from compound text.
// Missing optional fields in the model output are coerced to empty values.
func (e *Extractor) ExtractNote(ctx context.Context, compoundText string) (*ai.Extraction, error) {
	var result extraction
	err := e.generateJSON(ctx, buildExtractionPrompt(e.withIntentions), compoundText, &result)
	if err != nil {
		return nil, err
	}

	out := &ai.Extraction{
		Summary:    strings.TrimSpace(result.Summary),
		Knowledge:  make([]ai.ExtractedStatement, 0, len(result.AtomicKnowledge)),
		Topics:     coerceEntities(result.Topics),
		Intentions: coerceEntities(result.Intentions),
	}

	for _, s := range result.AtomicKnowledge {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		out.Knowledge = append(out.Knowledge, ai.ExtractedStatement{Text: text, IsAsk: s.IsAsk})
	}

	if !e.withIntentions {
		// Intentions are not requested in this variant; drop any the model
		// volunteered so the two variants stay distinguishable downstream.
		out.Intentions = []ai.ExtractedEntity{}
	}

	e.logger.Debug("extracted note",
		"statements", len(out.Knowledge),
		"topics", len(out.Topics),
		"intentions", len(out.Intentions))

	return out, nil
}

// ExtractAskTopics mines additional topics implied by ask statements.
func (e *Extractor) ExtractAskTopics(ctx context.Context, asks []string, knownTopics []string) ([]ai.ExtractedEntity, error) {
	if len(asks) == 0 {
		return []ai.ExtractedEntity{}, nil
	}

	var result askTopics
	input := strings.Join(asks, "\n")
	if err := e.generateJSON(ctx, buildAskTopicsPrompt(knownTopics), input, &result); err != nil {
		return nil, err
	}

	topics := coerceEntities(result.Topics)
	e.logger.Debug("mined ask topics", "asks", len(asks), "topics", len(topics))
	return topics, nil
}

// generateJSON runs one chat completion in JSON mode and unmarshals the
// response into out, retrying on malformed JSON.
func (e *Extractor) generateJSON(ctx context.Context, systemPrompt, input string, out any) error {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(input),
			},
		},
	}

	var lastErr error
	for attempt := 0; attempt < parseAttempts; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return errors.New("extraction model returned no choices")
		}

		responseText := stripCodeFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), out); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extractor response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		return nil
	}

	e.logger.Error("failed to parse extractor response after retries", "err", lastErr)
	return lastErr
}

// coerceEntities validates model-supplied entities into a known-good shape:
// nil becomes empty, blank names are dropped, fields are trimmed.
func coerceEntities(raw []entity) []ai.ExtractedEntity {
	out := make([]ai.ExtractedEntity, 0, len(raw))
	for _, en := range raw {
		name := strings.TrimSpace(en.Name)
		if name == "" {
			continue
		}
		out = append(out, ai.ExtractedEntity{
			Name:        name,
			Description: strings.TrimSpace(en.Description),
		})
	}
	return out
}
