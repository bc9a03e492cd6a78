package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brepml/brepgraph/pkg/hetero"
)

// Record is one stored conversion result.
type Record struct {
	ID        string        `json:"id" bson:"_id"`
	Name      string        `json:"name" bson:"name"`
	Hash      string        `json:"hash" bson:"hash"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	Graph     *hetero.Graph `json:"graph" bson:"graph"`
}

// NewRecord builds a record for a graph. The ID is random; the hash derives
// from the graph's content, so two records of the same graph share a hash
// but never an ID.
func NewRecord(name string, g *hetero.Graph) Record {
	return Record{
		ID:        uuid.NewString(),
		Name:      name,
		Hash:      g.ContentHash(),
		CreatedAt: time.Now().UTC(),
		Graph:     g,
	}
}

// Summary is a record without its graph payload, used for listings.
type Summary struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Hash      string    `json:"hash" bson:"hash"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Store is the persistence interface for conversion results.
//
// Get returns [errors.ErrCodeGraphNotFound] for unknown IDs. List returns
// summaries newest first, capped at limit (or all records when limit <= 0).
type Store interface {
	Put(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (*Record, error)
	FindByHash(ctx context.Context, hash string) (*Record, error)
	List(ctx context.Context, limit int) ([]Summary, error)
	Delete(ctx context.Context, id string) error
	Close(ctx context.Context) error
}
