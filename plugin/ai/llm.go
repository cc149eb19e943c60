package ai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// ChatService is the conversational generation interface.
type ChatService interface {
	// Chat performs one blocking generation and returns the full text.
	Chat(ctx context.Context, message string) (string, error)

	// Stream performs one blocking generation, then delivers the result as
	// paced word chunks. The error channel yields at most one error: a
	// generation failure (before any chunk) or a cancellation.
	Stream(ctx context.Context, message string) (<-chan string, <-chan error)
}

type chatService struct {
	engine   *Engine
	streamer *Streamer
}

// NewChatService creates a ChatService backed by a lazily constructed
// OpenAI-compatible completion client.
func NewChatService(cfg *ChatConfig) ChatService {
	construct := func() (Generator, error) {
		return newCompletionGenerator(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.MaxTokens, cfg.Temperature)
	}
	return &chatService{
		engine:   NewEngine(construct, cfg.Timeout),
		streamer: NewStreamer(cfg.StreamDelay),
	}
}

func (s *chatService) Chat(ctx context.Context, message string) (string, error) {
	return s.engine.Generate(ctx, message)
}

func (s *chatService) Stream(ctx context.Context, message string) (<-chan string, <-chan error) {
	out := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		text, err := s.engine.Generate(ctx, message)
		if err != nil {
			errCh <- err
			return
		}
		if err := s.streamer.Pace(ctx, text, out); err != nil {
			errCh <- err
		}
	}()

	return out, errCh
}

// completionGenerator adapts an OpenAI-compatible chat completion endpoint
// to the Generator contract. Each call is prompt-only; no conversation
// context is assembled.
type completionGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

func newCompletionGenerator(baseURL, apiKey, model string, maxTokens int, temperature float32) (Generator, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &completionGenerator{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}, nil
}

func (g *completionGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
