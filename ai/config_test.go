package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.ExtractorHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.VisionHost)
	assert.NotEmpty(t, cfg.EmbeddingModel)
	assert.NotEmpty(t, cfg.ExtractorModel)
	assert.NotEmpty(t, cfg.VisionModel)
	assert.False(t, cfg.ExtractIntentions)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://models.internal:9100"),
		WithExtractorModel("gpt-4o-mini"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithVisionModel("gpt-4o-mini"),
		WithIntentions(true),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://models.internal:9100/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://models.internal:9100/v1", cfg.ExtractorHost)
	assert.Equal(t, "http://models.internal:9100/v1", cfg.VisionHost)
	assert.True(t, cfg.ExtractIntentions)
}

func TestNewConfig_SplitHosts(t *testing.T) {
	cfg := NewConfig(
		WithEmbeddingHost("http://a:1"),
		WithExtractorHost("http://b:2"),
		WithVisionHost("http://c:3"),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://a:1/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://b:2/v1", cfg.ExtractorHost)
	assert.Equal(t, "http://c:3/v1", cfg.VisionHost)
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"bare host", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already normalized", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.EmbeddingHost = tt.host
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.EmbeddingHost)
		})
	}
}

func TestConfig_Validate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing extractor host", func(c *Config) { c.ExtractorHost = "" }},
		{"missing vision host", func(c *Config) { c.VisionHost = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing extractor model", func(c *Config) { c.ExtractorModel = "" }},
		{"missing vision model", func(c *Config) { c.VisionModel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
