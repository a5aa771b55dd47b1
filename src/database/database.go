package database

import (
	"context"
	"log"
	"sync"

	"student-management/src/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // Connect is safe to call more than once
	connectErr error

	StudentCollection *mongo.Collection
)

// Connect establishes the MongoDB connection and binds the collection
// handles. The actual dial happens only on the first call.
func Connect(cfg config.Config) error {
	once.Do(func() {
		clientOptions := options.Client().ApplyURI(cfg.MongoURI)

		client, connectErr = mongo.Connect(context.Background(), clientOptions)
		if connectErr != nil {
			return
		}

		connectErr = client.Ping(context.Background(), readpref.Primary())
		if connectErr != nil {
			return
		}

		log.Println("MongoDB connected successfully")

		StudentCollection = client.Database(cfg.MongoDB).Collection("students")
	})

	return connectErr
}
