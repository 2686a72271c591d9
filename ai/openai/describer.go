package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/doelenia/ausna-sub004/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Describer implements ai.Describer using OpenAI-compatible vision chat APIs.
type Describer struct {
	client llms.Model
	logger *slog.Logger
}

// newDescriber is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newDescriber(config *ai.Config) (*Describer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.VisionHost),
		openai.WithToken("none"),
		openai.WithModel(config.VisionModel),
	)
	if err != nil {
		return nil, err
	}

	return &Describer{
		client: client,
		logger: slog.Default().With("component", "openai-describer"),
	}, nil
}

// NewDescriber creates a new vision describer using the provided configuration.
//
// Returns ai.Describer interface to enforce abstraction.
func NewDescriber(config *ai.Config) (ai.Describer, error) {
	return newDescriber(config)
}

// DescribeImage describes the image at the given URL, using hint as
// surrounding context. The image is passed by URL; the model fetches it.
func (d *Describer) DescribeImage(ctx context.Context, url, hint string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildVisionPrompt(hint)),
				llms.ImageURLPart(url),
			},
		},
	}

	response, err := d.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		d.logger.Error("failed to describe image", "url", url, "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		d.logger.Debug("no choices returned from vision model", "url", url)
		return "", errors.New("vision model returned no description")
	}

	description := strings.TrimSpace(response.Choices[0].Content)
	if description == "" {
		return "", errors.New("vision model returned empty description")
	}

	d.logger.Debug("described image", "url", url, "length", len(description))
	return description, nil
}
