package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store against a MongoDB collection. Lookups use the
// application id field, which gets a unique index at construction time.
type Mongo[T any] struct {
	col     *mongo.Collection
	idField string
}

func NewMongo[T any](col *mongo.Collection, idField string) *Mongo[T] {
	idx := mongo.IndexModel{Keys: bson.D{{Key: idField, Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &Mongo[T]{col: col, idField: idField}
}

// hideID keeps Mongo's internal _id out of every decoded document.
var hideID = bson.M{"_id": 0}

func (m *Mongo[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	opts := options.Find().SetProjection(hideID).SetLimit(ListLimit)
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []T{}
	for cur.Next(ctx) {
		var d T
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, cur.Err()
}

func (m *Mongo[T]) List(ctx context.Context) ([]T, error) {
	return m.find(ctx, bson.M{})
}

func (m *Mongo[T]) ListWhere(ctx context.Context, field, value string) ([]T, error) {
	return m.find(ctx, bson.M{field: value})
}

func (m *Mongo[T]) ListSince(ctx context.Context, field string, since time.Time) ([]T, error) {
	return m.find(ctx, bson.M{field: bson.M{"$gte": since}})
}

func (m *Mongo[T]) Insert(ctx context.Context, doc *T) error {
	_, err := m.col.InsertOne(ctx, doc)
	return err
}

func (m *Mongo[T]) Get(ctx context.Context, id string) (*T, error) {
	var d T
	err := m.col.FindOne(ctx, bson.M{m.idField: id}, options.FindOne().SetProjection(hideID)).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *Mongo[T]) Replace(ctx context.Context, id string, fields interface{}) (*T, error) {
	res, err := m.col.UpdateOne(ctx, bson.M{m.idField: id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return m.Get(ctx, id)
}

func (m *Mongo[T]) Patch(ctx context.Context, id string, set map[string]interface{}) error {
	res, err := m.col.UpdateOne(ctx, bson.M{m.idField: id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo[T]) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{m.idField: id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo[T]) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{})
}

func (m *Mongo[T]) CountWhere(ctx context.Context, field, value string) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{field: value})
}
