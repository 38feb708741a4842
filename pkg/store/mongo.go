package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoStore keeps diagrams in a MongoDB collection, keyed by diagram
// name via the _id field.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongo connects to MongoDB and verifies the connection.
func NewMongo(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "drawio"
	}
	if cfg.Collection == "" {
		cfg.Collection = "diagrams"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, name string) (*Record, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, NotFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("get diagram: %w", err)
	}
	return &rec, nil
}

func (s *MongoStore) Put(ctx context.Context, rec *Record) error {
	if err := ValidateName(rec.Name); err != nil {
		return err
	}

	rec.UpdatedAt = time.Now()
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.Name}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store diagram: %w", err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return fmt.Errorf("delete diagram: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list diagrams: %w", err)
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var doc struct {
			Name string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode diagram name: %w", err)
		}
		names = append(names, doc.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list diagrams: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
