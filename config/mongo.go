package config

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNoMongoURI signals that no durable store is configured and the
// caller should fall back to the in-memory store.
var ErrNoMongoURI = errors.New("MONGODB_URI is not configured")

var (
	mongoOnce sync.Once
	mongoDB   *mongo.Database
	mongoErr  error
)

const mongoConnectTimeout = 5 * time.Second

// MongoDatabase returns the shared MongoDB database handle. The
// connection is established at most once per process and reused by
// every subsequent call, so serverless containers that survive across
// invocations do not reconnect per request. Returns ErrNoMongoURI
// when MONGODB_URI is not configured.
func MongoDatabase() (*mongo.Database, error) {
	mongoOnce.Do(func() {
		uri := viper.GetString("MONGODB_URI")
		if uri == "" {
			mongoErr = ErrNoMongoURI
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			mongoErr = err
			return
		}

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			mongoErr = err
			return
		}

		mongoDB = client.Database(viper.GetString("MONGODB_DB"))
	})

	return mongoDB, mongoErr
}

// CloseMongo disconnects the shared client. Only the long-lived server
// calls this on shutdown; serverless invocations keep the connection
// for container reuse.
func CloseMongo() error {
	if mongoDB == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	return mongoDB.Client().Disconnect(ctx)
}
