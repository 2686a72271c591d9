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


package mock

import "github.com/doelenia/ausna-sub004/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock embedder, extractor and describer instances.
type MockProvider struct {
	embedder  *MockEmbedder
	extractor *MockExtractor
	describer *MockDescriber
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production
// constructors. Use GetMockEmbedder()/GetMockExtractor()/GetMockDescriber()
// to access concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		extractor: NewMockExtractor(),
		describer: NewMockDescriber(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(embedder *MockEmbedder, extractor *MockExtractor, describer *MockDescriber) ai.Provider {
	return &MockProvider{
		embedder:  embedder,
		extractor: extractor,
		describer: describer,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Extractor returns the mock extractor.
func (p *MockProvider) Extractor() ai.Extractor {
	return p.extractor
}

// Describer returns the mock describer.
func (p *MockProvider) Describer() ai.Describer {
	return p.describer
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockExtractor returns the underlying mock extractor for test assertions.
func (p *MockProvider) GetMockExtractor() *MockExtractor {
	return p.extractor
}

// GetMockDescriber returns the underlying mock describer for test assertions.
func (p *MockProvider) GetMockDescriber() *MockDescriber {
	return p.describer
}
