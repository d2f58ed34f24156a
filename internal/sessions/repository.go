package sessions

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides session persistence. GetByToken returns (nil, nil)
// when no session matches; expiry is the caller's concern.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

// MongoRepository implements Repository on a Mongo collection keyed by
// session_token.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "session_token", Value: 1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, s *Session) error {
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *MongoRepository) GetByToken(ctx context.Context, token string) (*Session, error) {
	var doc sessionDoc
	err := r.col.FindOne(ctx, bson.M{"session_token": token},
		options.FindOne().SetProjection(bson.M{"_id": 0})).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return doc.toSession()
}

func (r *MongoRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"session_token": token})
	return err
}
