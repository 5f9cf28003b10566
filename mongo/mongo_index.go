package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soundvault/soundvault-backend/domain"
)

// CreateIndexes sets up the indexes the catalog queries depend on. Index
// creation is idempotent; failures are logged and do not block startup.
func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	categoryCollection := db.Collection(domain.CollectionCategory)
	createUniqueIndex(ctx, categoryCollection, bson.D{{Key: "category_name", Value: 1}}, "category_name_unique")

	subCategoryCollection := db.Collection(domain.CollectionSubCategory)
	createIndex(ctx, subCategoryCollection, bson.D{{Key: "category", Value: 1}}, "category")
	createIndex(ctx, subCategoryCollection, bson.D{{Key: "subcategory_name", Value: 1}}, "subcategory_name")

	audioCollection := db.Collection(domain.CollectionAudio)
	createIndex(ctx, audioCollection, bson.D{{Key: "subcategory", Value: 1}}, "subcategory")
	createIndex(ctx, audioCollection, bson.D{{Key: "artist", Value: 1}}, "artist")
	createIndex(ctx, audioCollection, bson.D{{Key: "title", Value: 1}}, "title")

	adminCollection := db.Collection(domain.CollectionAdminUser)
	createUniqueIndex(ctx, adminCollection, bson.D{{Key: "email", Value: 1}}, "email_unique")

	tokenCollection := db.Collection(domain.CollectionNotificationToken)
	createUniqueIndex(ctx, tokenCollection, bson.D{{Key: "token", Value: 1}}, "token_unique")

	feedbackCollection := db.Collection(domain.CollectionFeedback)
	createIndex(ctx, feedbackCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at")
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("create index %q failed: %v", name, err)
	}
}

func createUniqueIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("create unique index %q failed: %v", name, err)
	}
}
