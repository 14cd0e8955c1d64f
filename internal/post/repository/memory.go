package repository

import (
	"context"
	"sync"
	"time"

	"github.com/inkpost/inkpost/internal/post"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used for unit tests and local runs
// without a MongoDB instance. Insertion order is preserved so List returns a
// stable sequence.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*post.Post
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*post.Post)}
}

func (m *MemoryRepo) Create(ctx context.Context, p *post.Post) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertLocked(p)
	return p.ID, nil
}

func (m *MemoryRepo) InsertMany(ctx context.Context, posts []*post.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range posts {
		m.insertLocked(p)
	}
	return nil
}

func (m *MemoryRepo) insertLocked(p *post.Post) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
	cp := *p
	m.store[p.ID] = &cp
	m.order = append(m.order, p.ID)
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*post.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]*post.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*post.Post, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.store[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store)), nil
}

func (m *MemoryRepo) Update(ctx context.Context, id, title, content string, author post.Author) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	p.Title = title
	p.Content = content
	p.Author = author
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
