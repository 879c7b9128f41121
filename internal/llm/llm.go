package llm

import "context"

// StreamEvent is one item produced by a streaming generation call. Either
// Token carries the next piece of model output, or Err reports why the stream
// stopped early. The producing channel is closed after the final event.
type StreamEvent struct {
	Token string
	Err   error
}

// Generator produces streamed completions. The returned channel delivers
// tokens in generation order; cancelling the context stops the producer.
type Generator interface {
	StreamCompletion(ctx context.Context, prompt string) (<-chan StreamEvent, error)
}
