// Package openai implements the ai service interfaces against
// OpenAI-compatible HTTP APIs (OpenAI, Ollama, LocalAI, vLLM, ...) via
// langchaingo.
//
// The extractor runs chat completions in JSON mode at temperature 0 and
// repairs common formatting defects before unmarshaling. The describer
// passes images by URL as multimodal content parts. The embedder wraps the
// langchaingo embeddings client.
//
// All constructors accept an *ai.Config and validate it; NewProvider wires
// the three services over shared configuration.
package openai
