package vector

import (
	"context"
	"fmt"

	"github.com/harshit2786/pdf-chat-be/internal/config"
	"github.com/qdrant/go-client/qdrant"
)

// Payload layout written by the embedding worker. The chunk text lives under
// "content" and the filter keys under a nested "metadata" struct, so filters
// address them by dotted path.
const (
	fieldFolderID = "metadata.folderId"
	fieldPDFID    = "metadata.pdfId"
	fieldContent  = "content"
)

// Chunk is one retrieved slice of an indexed PDF.
type Chunk struct {
	Content string
	PDFID   string
	Score   float32
}

// Index wraps the Qdrant gRPC client for the single collection this service
// works with.
type Index struct {
	client     *qdrant.Client
	collection string
}

// NewIndex connects to Qdrant.
func NewIndex(cfg *config.QdrantConfig) (*Index, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: cfg.Host,
		Port: cfg.Port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &Index{
		client:     client,
		collection: cfg.Collection,
	}, nil
}

// EnsureCollection creates the collection if it does not exist yet, so a
// fresh deployment can serve queries before the worker ever ran.
func (i *Index) EnsureCollection(ctx context.Context, dim int) error {
	exists, err := i.client.CollectionExists(ctx, i.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection '%s': %w", i.collection, err)
	}
	if exists {
		return nil
	}

	err = i.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: i.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dim),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection '%s': %w", i.collection, err)
	}
	return nil
}

// Search runs a similarity query restricted to chunks of one folder.
func (i *Index) Search(ctx context.Context, folderID string, vector []float32, limit int) ([]Chunk, error) {
	points, err := i.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: i.collection,
		Query:          qdrant.NewQuery(vector...),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(fieldFolderID, folderID),
			},
		},
		Limit:       qdrant.PtrOf(uint64(limit)),
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query collection '%s': %w", i.collection, err)
	}

	chunks := make([]Chunk, 0, len(points))
	for _, p := range points {
		chunk := Chunk{Score: p.GetScore()}
		if v, ok := p.GetPayload()[fieldContent]; ok {
			chunk.Content = v.GetStringValue()
		}
		if meta, ok := p.GetPayload()["metadata"]; ok {
			if f := meta.GetStructValue().GetFields(); f != nil {
				chunk.PDFID = f["pdfId"].GetStringValue()
			}
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// DeleteByPDFID removes every chunk indexed for one PDF.
func (i *Index) DeleteByPDFID(ctx context.Context, pdfID string) error {
	return i.deleteByFilter(ctx, &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch(fieldPDFID, pdfID),
		},
	})
}

// DeleteByPDFIDs removes the chunks of a whole set of PDFs in one batched
// filtered delete. Used by the folder cascade.
func (i *Index) DeleteByPDFIDs(ctx context.Context, pdfIDs []string) error {
	if len(pdfIDs) == 0 {
		return nil
	}
	return i.deleteByFilter(ctx, &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatchKeywords(fieldPDFID, pdfIDs...),
		},
	})
}

func (i *Index) deleteByFilter(ctx context.Context, filter *qdrant.Filter) error {
	_, err := i.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: i.collection,
		Points:         qdrant.NewPointsSelectorFilter(filter),
	})
	if err != nil {
		return fmt.Errorf("failed to delete points from '%s': %w", i.collection, err)
	}
	return nil
}

// Close tears down the underlying gRPC connection.
func (i *Index) Close() error {
	return i.client.Close()
}
