package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"fitcoach/internal/domain"
)

const turnCollection = "chat_history"

// Store persists Turns in a MongoDB collection, one document per Turn. The
// client is opened once at startup and shared across requests.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewStore connects to MongoDB at uri and verifies the connection with a
// ping before returning.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, &domain.StoreError{Op: "connect", Err: err}
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, &domain.StoreError{Op: "ping", Err: err}
	}

	return &Store{
		client: client,
		coll:   client.Database(database).Collection(turnCollection),
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return &domain.StoreError{Op: "disconnect", Err: err}
	}
	return nil
}

type turnDoc struct {
	Identity  string    `bson:"user_id"`
	Role      string    `bson:"role"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"timestamp"`
}

func (s *Store) Append(ctx context.Context, identity domain.Identity, role domain.Role, content string) (*domain.Turn, error) {
	turn := &domain.Turn{
		Identity:  identity,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	doc := turnDoc{
		Identity:  string(identity),
		Role:      string(role),
		Content:   content,
		CreatedAt: turn.CreatedAt,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, &domain.StoreError{Op: "append", Err: err}
	}
	return turn, nil
}

func (s *Store) RecentWindow(ctx context.Context, identity domain.Identity, limit int) ([]*domain.Turn, error) {
	if limit <= 0 {
		return nil, &domain.StoreError{Op: "recent window", Err: fmt.Errorf("limit must be positive, got %d", limit)}
	}

	// Newest first so the limit keeps the most recent turns; reversed below
	// so callers always see chronological order.
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.coll.Find(ctx, bson.M{"user_id": string(identity)}, opts)
	if err != nil {
		return nil, &domain.StoreError{Op: "recent window", Err: err}
	}
	defer cur.Close(ctx)

	var docs []turnDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, &domain.StoreError{Op: "recent window decode", Err: err}
	}

	out := make([]*domain.Turn, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		d := docs[i]
		out = append(out, &domain.Turn{
			Identity:  domain.Identity(d.Identity),
			Role:      domain.Role(d.Role),
			Content:   d.Content,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}

func (s *Store) Clear(ctx context.Context, identity domain.Identity) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"user_id": string(identity)})
	if err != nil {
		return 0, &domain.StoreError{Op: "clear", Err: err}
	}
	return res.DeletedCount, nil
}
