package chat

import (
	"context"
	"strings"

	"github.com/harshit2786/pdf-chat-be/internal/embedding"
	"github.com/harshit2786/pdf-chat-be/internal/vector"
)

// Searcher is the slice of the vector index the retriever needs.
type Searcher interface {
	Search(ctx context.Context, folderID string, vec []float32, limit int) ([]vector.Chunk, error)
}

// Retriever embeds a query and fetches the closest chunks of one folder.
type Retriever struct {
	embedder embedding.Embedder
	index    Searcher
	topK     int
}

// NewRetriever creates a Retriever with an explicit top-k so retrieval depth
// is a deployment decision, not a library default.
func NewRetriever(embedder embedding.Embedder, index Searcher, topK int) *Retriever {
	return &Retriever{
		embedder: embedder,
		index:    index,
		topK:     topK,
	}
}

// Retrieve returns the chunks of the folder most similar to the query.
func (r *Retriever) Retrieve(ctx context.Context, folderID, query string) ([]vector.Chunk, error) {
	vec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.index.Search(ctx, folderID, vec, r.topK)
}

// BuildPrompt embeds the retrieved context verbatim ahead of the question.
func BuildPrompt(chunks []vector.Chunk, question string) string {
	var sb strings.Builder
	sb.WriteString("Answer the question based only on the following context:\n")
	for i, chunk := range chunks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(chunk.Content)
	}
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}
