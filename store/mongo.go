package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens and pings a client against the configured MongoDB deployment.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return client, nil
}

// MongoStore implements Store on top of a mongo database.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore creates a new MongoStore
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) GetItem(ctx context.Context, table string, key bson.M, out any) error {
	err := s.db.Collection(table).FindOne(ctx, key).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrItemNotFound
	}
	return err
}

func (s *MongoStore) Query(ctx context.Context, table string, filter bson.M, limit int64, out any) error {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := s.db.Collection(table).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (s *MongoStore) PutItem(ctx context.Context, table string, item any) error {
	_, err := s.db.Collection(table).InsertOne(ctx, item)
	return err
}

// UpdateItem sets the given fields on the document matching the key and
// decodes the post-update document into out.
func (s *MongoStore) UpdateItem(ctx context.Context, table string, key bson.M, set bson.M, out any) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.db.Collection(table).FindOneAndUpdate(ctx, key, bson.M{"$set": set}, opts).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrConditionFailed
	}
	return err
}

func (s *MongoStore) DeleteItem(ctx context.Context, table string, key bson.M) error {
	res, err := s.db.Collection(table).DeleteOne(ctx, key)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrConditionFailed
	}
	return nil
}
