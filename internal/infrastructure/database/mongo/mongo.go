// Package mongo stores post records in a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moodfeed/internal/domain/model"
	"moodfeed/internal/domain/repository/database"
	"moodfeed/pkg/logger"
)

type Config struct {
	URI               string `yaml:"uri"                      env:"MONGO_URI"`
	DBName            string `yaml:"db_name"                  env:"MONGO_DB_NAME"   env-default:"moodfeed"`
	CollectionPrefix  string `yaml:"collection_prefix"        env:"DB_TABLE_PREFIX" env-default:"app_"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms" env-default:"10000"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"      env-default:"5000"`
}

type Store struct {
	client       *mongo.Client
	dbName       string
	collection   string
	queryTimeout time.Duration
}

func Connect(ctx context.Context, cfg Config) (*Store, error) {
	logger.Info("connecting to mongo")

	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{
		client:       client,
		dbName:       cfg.DBName,
		collection:   cfg.CollectionPrefix + "files",
		queryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}, nil
}

func (s *Store) coll() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(s.collection)
}

func (s *Store) Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	db := s.client.Database(s.dbName)

	collections, err := db.ListCollectionNames(ctx, bson.M{"name": s.collection})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	if len(collections) == 0 {
		collOpts := options.CreateCollection().SetValidator(bson.M{
			"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"_id", "kind", "title", "path", "url", "size", "mime", "created_at"},
				"properties": bson.M{
					"_id":   bson.M{"bsonType": "string"},
					"kind":  bson.M{"enum": []string{"text", "image", "video"}},
					"title": bson.M{"bsonType": "string", "minLength": 1},
					"path":  bson.M{"bsonType": "string"},
					"url":   bson.M{"bsonType": "string"},
					"size":  bson.M{"bsonType": []string{"long", "int"}},
					"mime":  bson.M{"bsonType": "string"},
					"meta": bson.M{
						"bsonType":             "object",
						"additionalProperties": bson.M{"bsonType": "string"},
					},
					"created_at": bson.M{"bsonType": "date"},
				},
			},
		})

		if err := db.CreateCollection(ctx, s.collection, collOpts); err != nil {
			return fmt.Errorf("create collection: %w", err)
		}
	}

	_, err = s.coll().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}

	return nil
}

func (s *Store) CreateFile(ctx context.Context, np model.NewPost) (model.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	// BSON dates carry millisecond precision.
	post := np.Build(uuid.NewString(), time.Now().UTC().Truncate(time.Millisecond))

	if _, err := s.coll().InsertOne(ctx, post); err != nil {
		return model.Post{}, fmt.Errorf("insert post: %w", err)
	}

	return post, nil
}

func (s *Store) ListFiles(ctx context.Context, kind model.Kind, limit int) ([]model.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = database.DefaultListLimit
	}

	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := make([]model.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	for i := range posts {
		posts[i].CreatedAt = posts[i].CreatedAt.UTC()
	}

	return posts, nil
}

func (s *Store) DeleteFile(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	_, err := s.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("delete post: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}
