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


package mock

import "github.com/poiesic/collegewala/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock generator and suggester instances.
type MockProvider struct {
	generator *MockAnswerGenerator
	suggester *MockFollowUpSuggester
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production
// constructors. Use GetMockGenerator()/GetMockSuggester() to access concrete
// types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		generator: NewMockAnswerGenerator(),
		suggester: NewMockFollowUpSuggester(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock
// services. This allows full control over the behavior of each service.
func NewMockProviderWithServices(generator *MockAnswerGenerator, suggester *MockFollowUpSuggester) ai.Provider {
	return &MockProvider{
		generator: generator,
		suggester: suggester,
	}
}

// AnswerGenerator returns the mock answer generator.
func (p *MockProvider) AnswerGenerator() ai.AnswerGenerator {
	return p.generator
}

// FollowUpSuggester returns the mock follow-up suggester.
func (p *MockProvider) FollowUpSuggester() ai.FollowUpSuggester {
	return p.suggester
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockGenerator returns the underlying mock generator for test assertions.
// This allows tests to check recorded calls and inject custom behavior.
func (p *MockProvider) GetMockGenerator() *MockAnswerGenerator {
	return p.generator
}

// GetMockSuggester returns the underlying mock suggester for test assertions.
func (p *MockProvider) GetMockSuggester() *MockFollowUpSuggester {
	return p.suggester
}
