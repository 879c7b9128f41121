package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

// OpenAI is a Generator backed by the OpenAI chat completion API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a new OpenAI generator.
func NewOpenAI(apiKey, model string) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	return &OpenAI{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// StreamCompletion opens a streaming chat completion and feeds its deltas to
// the returned channel. The goroutine exits when the stream ends, fails or
// the context is cancelled.
func (o *OpenAI) StreamCompletion(ctx context.Context, prompt string) (<-chan StreamEvent, error) {
	temperature := float32(0)
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: &temperature,
		Stream:      true,
	}

	stream, err := o.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion stream: %w", err)
	}

	events := make(chan StreamEvent)

	go func() {
		defer close(events)
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				select {
				case events <- StreamEvent{Err: err}:
				case <-ctx.Done():
				}
				return
			}

			for _, choice := range resp.Choices {
				if choice.Delta.Content == "" {
					continue
				}
				select {
				case events <- StreamEvent{Token: choice.Delta.Content}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}
