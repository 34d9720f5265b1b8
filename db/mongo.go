package db

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/CPU-commits/LMS_Backend/settings"
)

var settingsData = settings.GetSettings()

// Mongo error string for FindOne with no match
const NO_SINGLE_DOCUMENT = "mongo: no documents in result"

var Ctx = context.Background()

type MongoConn struct {
	once   sync.Once
	client *mongo.Client
}

func (conn *MongoConn) connect() {
	uri := fmt.Sprintf(
		"%s://%s:%s@%s",
		settingsData.MONGO_CONNECTION,
		settingsData.MONGO_ROOT_USERNAME,
		settingsData.MONGO_ROOT_PASSWORD,
		settingsData.MONGO_HOST,
	)
	client, err := mongo.Connect(Ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %v", err)
	}
	// Ping with retry, mongo dials lazily
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = time.Minute
	err = backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(Ctx, time.Second*5)
		defer cancel()
		return client.Ping(ctx, readpref.Primary())
	}, retryBackoff)
	if err != nil {
		log.Fatalf("MongoDB is not reachable: %v", err)
	}
	conn.client = client
}

func (conn *MongoConn) Client() *mongo.Client {
	conn.once.Do(conn.connect)
	return conn.client
}

func (conn *MongoConn) GetCollection(collectionName string) *mongo.Collection {
	return conn.Client().Database(settingsData.MONGO_DB).Collection(collectionName)
}

func (conn *MongoConn) GetCollections() ([]string, error) {
	return conn.Client().Database(settingsData.MONGO_DB).ListCollectionNames(Ctx, bson.D{})
}

func (conn *MongoConn) CreateCollection(
	collectionName string,
	opts *options.CreateCollectionOptions,
) error {
	return conn.Client().Database(settingsData.MONGO_DB).CreateCollection(Ctx, collectionName, opts)
}

func NewDBConnection() *MongoConn {
	return &MongoConn{}
}
