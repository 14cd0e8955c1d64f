package service

import (
	"context"
	"errors"
	"testing"

	"github.com/inkpost/inkpost/internal/post"
)

func TestCreateValidation(t *testing.T) {
	svc := NewMemory()
	ctx := context.Background()
	author := post.Author{FirstName: "X", LastName: "Y"}

	cases := []struct {
		name    string
		title   string
		content string
		author  post.Author
	}{
		{"empty title", "", "body", author},
		{"empty content", "title", "", author},
		{"missing first name", "title", "body", post.Author{LastName: "Y"}},
		{"missing last name", "title", "body", post.Author{FirstName: "X"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.title, tc.content, tc.author); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}

	n, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rejected creates must not persist, count=%d", n)
	}
}

func TestCreateAssignsIDAndCreated(t *testing.T) {
	svc := NewMemory()
	ctx := context.Background()

	p, err := svc.Create(ctx, "A", "B", post.Author{FirstName: "X", LastName: "Y"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if p.Created.IsZero() {
		t.Fatal("expected store-assigned created timestamp")
	}

	got, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if got.Title != "A" || got.Content != "B" || got.Author.Full() != "X Y" {
		t.Fatalf("lookup does not reproduce input: %+v", got)
	}
}

func TestUpdateSemantics(t *testing.T) {
	svc := NewMemory()
	ctx := context.Background()

	p, err := svc.Create(ctx, "A", "B", post.Author{FirstName: "X", LastName: "Y"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.Update(ctx, p.ID, "Newness", "For all is newness here.", post.Author{FirstName: "New", LastName: "Man"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Title != "Newness" || got.Author.Full() != "New Man" {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.ID != p.ID || !got.Created.Equal(p.Created) {
		t.Fatalf("id/created must be immutable: %+v vs %+v", got, p)
	}

	if err := svc.Update(ctx, "missing-id", "T", "C", post.Author{FirstName: "A", LastName: "B"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent id, got %v", err)
	}
	if err := svc.Update(ctx, p.ID, "", "C", post.Author{FirstName: "A", LastName: "B"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty title, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := NewMemory()
	ctx := context.Background()

	p, err := svc.Create(ctx, "A", "B", post.Author{FirstName: "X", LastName: "Y"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if _, err := svc.Get(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// deleting again is still success
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

// failRepo simulates a store outage for every operation.
type failRepo struct{ err error }

func (f *failRepo) Create(ctx context.Context, p *post.Post) (string, error) { return "", f.err }
func (f *failRepo) InsertMany(ctx context.Context, posts []*post.Post) error { return f.err }
func (f *failRepo) Get(ctx context.Context, id string) (*post.Post, error)  { return nil, f.err }
func (f *failRepo) List(ctx context.Context) ([]*post.Post, error)          { return nil, f.err }
func (f *failRepo) Count(ctx context.Context) (int64, error)                { return 0, f.err }
func (f *failRepo) Update(ctx context.Context, id, title, content string, author post.Author) error {
	return f.err
}
func (f *failRepo) Delete(ctx context.Context, id string) error { return f.err }

func TestStoreErrorsPropagate(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := New(&failRepo{err: storeErr})
	ctx := context.Background()
	author := post.Author{FirstName: "X", LastName: "Y"}

	if _, err := svc.List(ctx); !errors.Is(err, storeErr) {
		t.Fatalf("list: expected store error, got %v", err)
	}
	if _, err := svc.Create(ctx, "A", "B", author); !errors.Is(err, storeErr) {
		t.Fatalf("create: expected store error, got %v", err)
	}
	if err := svc.Update(ctx, "id", "A", "B", author); !errors.Is(err, storeErr) {
		t.Fatalf("update: expected store error, got %v", err)
	}
	// delete only absorbs not-found, never store failures
	if err := svc.Delete(ctx, "id"); !errors.Is(err, storeErr) {
		t.Fatalf("delete: expected store error, got %v", err)
	}
}
