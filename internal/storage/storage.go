package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/lakefield-systems/sales-server/internal/config"
	"github.com/lakefield-systems/sales-server/internal/storage/transaction"
)

const connectTimeout = time.Duration(10) * time.Second

type Storage struct {
	Client       *mongo.Client
	Transactions transaction.ICollection
}

func NewStorage(env *config.Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(env.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	database := client.Database(env.MongoDatabase)

	return &Storage{
		Client:       client,
		Transactions: transaction.NewCollection(database),
	}, nil
}
