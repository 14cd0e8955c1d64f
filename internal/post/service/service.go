package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkpost/inkpost/internal/post"
	"github.com/inkpost/inkpost/internal/post/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound reports that the referenced post does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation reports a rejected request body (empty required field,
	// unusable author). Wrapped values carry the specific field.
	ErrValidation = errors.New("invalid post")
)

// Service defines the post operations the handler layer exposes over HTTP.
// Delete is idempotent: removing an absent post succeeds.
type Service interface {
	List(ctx context.Context) ([]*post.Post, error)
	Get(ctx context.Context, id string) (*post.Post, error)
	Create(ctx context.Context, title, content string, author post.Author) (*post.Post, error)
	Update(ctx context.Context, id, title, content string, author post.Author) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, posts []*post.Post) error
}

// New returns a Service over the given repository.
func New(repo repository.PostRepository) Service {
	return &postService{repo: repo}
}

// NewMemory returns a Service backed by the in-memory repository.
func NewMemory() Service {
	return New(repository.NewMemoryRepo())
}

// NewMongo returns a Service backed by a MongoDB collection. The caller owns
// the client and collection lifecycle.
func NewMongo(col *mongo.Collection) Service {
	return New(repository.NewMongoRepo(col))
}

type postService struct {
	repo repository.PostRepository
}

func validate(title, content string, author post.Author) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if content == "" {
		return fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	if author.FirstName == "" || author.LastName == "" {
		return fmt.Errorf("%w: author requires a first and last name", ErrValidation)
	}
	return nil
}

func (s *postService) Create(ctx context.Context, title, content string, author post.Author) (*post.Post, error) {
	if err := validate(title, content, author); err != nil {
		return nil, err
	}
	p := &post.Post{Title: title, Content: content, Author: author}
	if _, err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *postService) Get(ctx context.Context, id string) (*post.Post, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *postService) List(ctx context.Context) ([]*post.Post, error) {
	return s.repo.List(ctx)
}

func (s *postService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *postService) Update(ctx context.Context, id, title, content string, author post.Author) error {
	if err := validate(title, content, author); err != nil {
		return err
	}
	err := s.repo.Update(ctx, id, title, content, author)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *postService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		// idempotent delete: absence of the target is success
		return nil
	}
	return err
}

func (s *postService) Seed(ctx context.Context, posts []*post.Post) error {
	return s.repo.InsertMany(ctx, posts)
}
