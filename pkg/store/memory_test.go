package store

import (
	"context"
	"testing"
	"time"

	"github.com/brepml/brepgraph/pkg/brep/solid"
	"github.com/brepml/brepgraph/pkg/errors"
	"github.com/brepml/brepgraph/pkg/pipeline"
)

func testRecord(t *testing.T, name string) Record {
	t.Helper()
	g, err := pipeline.Convert(solid.Box(1, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	return NewRecord(name, g)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	rec := testRecord(t, "cube")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "cube" || got.Hash != rec.Hash {
		t.Errorf("Get = %+v", got)
	}
	if got.Graph.ContentHash() != rec.Hash {
		t.Error("stored graph does not match its hash")
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.ErrCodeGraphNotFound {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeGraphNotFound)
	}
}

func TestMemoryStoreFindByHash(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := testRecord(t, "cube")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatal(err)
	}

	got, err := s.FindByHash(ctx, rec.Hash)
	if err != nil {
		t.Fatalf("FindByHash error: %v", err)
	}
	if got.ID != rec.ID {
		t.Errorf("FindByHash ID = %s, want %s", got.ID, rec.ID)
	}

	if _, err := s.FindByHash(ctx, "deadbeef"); err == nil {
		t.Error("unknown hash should fail")
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := testRecord(t, "first")
	first.CreatedAt = time.Now().Add(-time.Hour)
	second := testRecord(t, "second")

	if err := s.Put(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, second); err != nil {
		t.Fatal(err)
	}

	all, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Name != "second" {
		t.Errorf("newest first, got %s", all[0].Name)
	}

	capped, err := s.List(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(capped) != 1 {
		t.Errorf("capped len = %d, want 1", len(capped))
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := testRecord(t, "cube")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); err == nil {
		t.Error("deleted record should be gone")
	}

	// Unknown ID is not an error.
	if err := s.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing ID should succeed: %v", err)
	}
}
