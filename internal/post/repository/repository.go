package repository

import (
	"context"
	"errors"

	"github.com/inkpost/inkpost/internal/post"
)

var (
	ErrNotFound = errors.New("post not found")
)

// PostRepository is the document-store surface the service layer depends on.
// Implementations assign the id and created timestamp at insert time; callers
// never supply either.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (string, error)
	InsertMany(ctx context.Context, posts []*post.Post) error
	Get(ctx context.Context, id string) (*post.Post, error)
	List(ctx context.Context) ([]*post.Post, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id, title, content string, author post.Author) error
	Delete(ctx context.Context, id string) error
}
