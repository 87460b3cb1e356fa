// Copyright 2026 Sociolens
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
	"log/slog"

	"github.com/sociolens/tweetlens/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Service implements ai.SemanticService using OpenAI-compatible chat APIs.
type Service struct {
	client      llms.Model
	maxTokens   int
	temperature float64
	logger      *slog.Logger
}

// newService is an internal constructor that returns the concrete type.
func newService(config *ai.Config) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []openai.Option{
		openai.WithBaseURL(config.Host),
		openai.WithModel(config.Model),
	}
	// An empty token lets the client library fall back to its environment
	// lookup; local OpenAI-compatible services take "none".
	if config.Token != "" {
		opts = append(opts, openai.WithToken(config.Token))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Service{
		client:      client,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		logger:      slog.Default().With("component", "openai-service"),
	}, nil
}

// NewService creates a semantic service client from the provided configuration.
//
// Returns the ai.SemanticService interface to enforce abstraction.
func NewService(config *ai.Config) (ai.SemanticService, error) {
	return newService(config)
}

// Generate sends the instruction as the system message and the payload as
// the user message, and returns the raw reply text. The reply is not
// validated here; shape recovery belongs to the extract package.
func (s *Service) Generate(ctx context.Context, instruction, payload string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(instruction),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(payload),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, content,
		llms.WithTemperature(s.temperature),
		llms.WithMaxTokens(s.maxTokens))
	if err != nil {
		s.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		s.logger.Debug("no choices returned from model")
		return "", nil
	}

	return response.Choices[0].Content, nil
}
