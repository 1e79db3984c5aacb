package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogs-api/internal/repository"
)

// BlogIndexes backs the newest-first listing and tag lookups.
func BlogIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "createdAt", Value: -1},
				{Key: "_id", Value: -1},
			},
			Options: options.Index().SetName("created_desc"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("tags"),
		},
	}
}

// UserIndexes makes sign up reject a second account for the same email.
func UserIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(repository.BlogsCollection).Indexes().CreateMany(ctx, BlogIndexes()); err != nil {
		return errors.Wrap(err, "ensure blog indexes")
	}
	if _, err := db.Collection(repository.UsersCollection).Indexes().CreateMany(ctx, UserIndexes()); err != nil {
		return errors.Wrap(err, "ensure user indexes")
	}
	return nil
}
