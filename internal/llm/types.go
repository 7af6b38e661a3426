package llm

import (
	"context"
	"errors"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks investor-rag/internal/llm Embedder,Completer

var (
	// ErrEmbedding is returned when the embedding provider fails or rejects a request.
	ErrEmbedding = errors.New("embedding service error")
	// ErrCompletion is returned when the completion provider fails or rejects a request.
	ErrCompletion = errors.New("completion service error")
)

// Embedder converts texts to fixed-length vectors.
type Embedder interface {
	// EmbedTexts generates one embedding per input text.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer generates text from a prompt.
type Completer interface {
	// Complete sends a single-prompt completion request and returns the generated text.
	Complete(ctx context.Context, prompt string, params ChatParams) (string, error)
}

// ChatParams holds parameters for chat completion requests.
type ChatParams struct {
	// Model specifies the model to use. If empty, the client's default model is used.
	Model string

	// MaxTokens specifies the maximum number of tokens to generate.
	// If 0, no limit is applied.
	MaxTokens int

	// Temperature controls the randomness of the output.
	Temperature float32
}
