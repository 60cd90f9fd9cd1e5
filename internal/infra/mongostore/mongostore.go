// Package mongostore is the MongoDB-backed storage. Documents carry an
// application-assigned uuid in the "id" field, distinct from Mongo's own
// _id; every query filters on that id plus the owning userId. Writes are
// single-document, so atomicity comes from the database itself — no
// multi-document transactions, no retries here.
package mongostore

import (
	"context"
	"fmt"

	"github.com/campaignforge/campaignforge-go/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	collUsers      = "users"
	collCampaigns  = "campaigns"
	collContacts   = "contacts"
	collTasks      = "tasks"
	collActivities = "activities"
)

// Store implements port.Storage on a MongoDB database.
type Store struct {
	client     *mongo.Client
	db         *mongo.Database
	thresholds domain.LeadThresholds
	logger     *zap.Logger
}

// New connects to MongoDB, pings it and ensures the indexes. A missing or
// unreachable database is fatal for the caller: there is no fallback to
// the in-memory backend once a URI is configured.
func New(ctx context.Context, uri, dbName string, thresholds domain.LeadThresholds, logger *zap.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	s := &Store{
		client:     client,
		db:         client.Database(dbName),
		thresholds: thresholds,
		logger:     logger,
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	logger.Info("mongodb store ready", zap.String("database", dbName))
	return s, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureIndexes creates the unique username index and the compound
// (userId, createdAt desc) index backing the descending list contract on
// every owned collection.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users index: %w", err)
	}

	for _, coll := range []string{collCampaigns, collContacts, collTasks, collActivities} {
		_, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("%s index: %w", coll, err)
		}
	}
	return nil
}

// byOwner is the standard ownership-scoped filter.
func byOwner(id, userID string) bson.M {
	return bson.M{"id": id, "userId": userID}
}

// newestFirst sorts a Find by creation time, newest first.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// findOne decodes a single ownership-scoped document into out.
// Returns (false, nil) when no document matches.
func (s *Store) findOne(ctx context.Context, coll string, filter bson.M, out any) (bool, error) {
	err := s.db.Collection(coll).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find %s: %w", coll, err)
	}
	return true, nil
}

// updateOne applies a $set to an ownership-scoped document and decodes the
// updated record into out. Returns (false, nil) when no document matches.
func (s *Store) updateOne(ctx context.Context, coll string, filter bson.M, sets bson.M, out any) (bool, error) {
	res := s.db.Collection(coll).FindOneAndUpdate(ctx, filter,
		bson.M{"$set": sets},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	err := res.Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("update %s: %w", coll, err)
	}
	return true, nil
}

// deleteOne removes an ownership-scoped document, reporting whether
// anything was removed.
func (s *Store) deleteOne(ctx context.Context, coll string, filter bson.M) (bool, error) {
	res, err := s.db.Collection(coll).DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", coll, err)
	}
	return res.DeletedCount == 1, nil
}
