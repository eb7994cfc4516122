package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
)

// userCollection is the MongoDB collection holding user documents.
const userCollection = "User"

// MongoDB is a connected MongoDB client bound to one database.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to MongoDB, pings the primary and makes sure the
// unique email index exists.
func NewConnectMongo(ctx context.Context, uri, databaseName string, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during mongo connection")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	db := &MongoDB{
		client:   client,
		database: client.Database(databaseName),
		logger:   log,
	}

	if err = db.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", databaseName).Msg("connected to mongo successfully")

	return db, nil
}

func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	_, err := m.database.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		m.logger.Err(err).Str("func", "*MongoDB.ensureIndexes").Msg("error creating email index")
		return fmt.Errorf("%w: creating email index: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
