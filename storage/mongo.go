package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dcode-github/property_valuation/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const valuationCollection = "valuations"

// MongoStore keeps saved valuations in a MongoDB collection keyed by the
// valuation ID.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection(valuationCollection)}
}

// EnsureIndexes creates the owner/createdAt index used by List.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("mongo: create index: %w", err)
	}
	return nil
}

func (s *MongoStore) Save(ctx context.Context, v *models.SavedValuation) error {
	if _, err := s.collection.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return fmt.Errorf("mongo: insert valuation: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, owner string, limit int64) ([]models.SavedValuation, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, bson.M{"owner": owner}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo: find valuations: %w", err)
	}
	defer cursor.Close(ctx)

	valuations := []models.SavedValuation{}
	if err := cursor.All(ctx, &valuations); err != nil {
		return nil, fmt.Errorf("mongo: decode valuations: %w", err)
	}
	return valuations, nil
}

func (s *MongoStore) Get(ctx context.Context, owner, id string) (*models.SavedValuation, error) {
	var v models.SavedValuation
	err := s.collection.FindOne(ctx, bson.M{"_id": id, "owner": owner}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: find valuation %s: %w", id, err)
	}
	return &v, nil
}

func (s *MongoStore) Delete(ctx context.Context, owner, id string) (bool, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return false, fmt.Errorf("mongo: delete valuation %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.collection.Database().Client().Disconnect(ctx)
}
