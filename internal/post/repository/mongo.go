package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/inkpost/inkpost/internal/post"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo persists posts in a MongoDB collection. Posts carry an "id"
// string field (ObjectID hex) rather than relying on Mongo's _id, so the
// memory and mongo repositories expose identical identifiers.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// unique index on "id" for lookups by identifier
	idx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, p *post.Post) (string, error) {
	stamp(p)
	if _, err := m.col.InsertOne(ctx, p); err != nil {
		return "", fmt.Errorf("insert post: %w", err)
	}
	return p.ID, nil
}

func (m *MongoRepo) InsertMany(ctx context.Context, posts []*post.Post) error {
	docs := make([]interface{}, 0, len(posts))
	for _, p := range posts {
		stamp(p)
		docs = append(docs, p)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := m.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert posts: %w", err)
	}
	return nil
}

func stamp(p *post.Post) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &p, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*post.Post, error) {
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)
	out := []*post.Post{}
	for cur.Next(ctx) {
		var p post.Post
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		out = append(out, &p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) Count(ctx context.Context) (int64, error) {
	n, err := m.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

func (m *MongoRepo) Update(ctx context.Context, id, title, content string, author post.Author) error {
	set := bson.M{"title": title, "content": content, "author": author}
	res, err := m.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
