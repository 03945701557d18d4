// internal/app/store/catalog/catalogstore.go

// Package catalog reads the CMS-authored content collections: packages,
// destinations, services, and gallery images. All writes happen in the
// external CMS; this store is read-only.
//
// Every query excludes draft documents. Detail lookups map
// mongo.ErrNoDocuments to (nil, nil): "no such document" is a normal
// outcome here, not an error. Other errors are returned as-is; the
// content façade (system/content) decides how to surface them.
package catalog

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names for the CMS content.
const (
	PackagesCollection     = "packages"
	DestinationsCollection = "destinations"
	ServicesCollection     = "services"
	GalleryCollection      = "gallery"
)

// Store provides read access to the content collections.
type Store struct {
	packages     *mongo.Collection
	destinations *mongo.Collection
	services     *mongo.Collection
	gallery      *mongo.Collection
}

// New creates a catalog store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{
		packages:     db.Collection(PackagesCollection),
		destinations: db.Collection(DestinationsCollection),
		services:     db.Collection(ServicesCollection),
		gallery:      db.Collection(GalleryCollection),
	}
}

// EnsureIndexes creates the indexes the content queries rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	packageIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "display_order", Value: 1}}},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}},
		{Keys: bson.D{{Key: "destination_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := s.packages.Indexes().CreateMany(ctx, packageIndexes); err != nil {
		return err
	}

	destinationIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "is_popular", Value: 1}, {Key: "display_order", Value: 1}}},
	}
	if _, err := s.destinations.Indexes().CreateMany(ctx, destinationIndexes); err != nil {
		return err
	}

	serviceIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}},
		{Keys: bson.D{{Key: "display_order", Value: 1}}},
	}
	if _, err := s.services.Indexes().CreateMany(ctx, serviceIndexes); err != nil {
		return err
	}

	galleryIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "display_order", Value: 1}}},
	}
	_, err := s.gallery.Indexes().CreateMany(ctx, galleryIndexes)
	return err
}

// published returns the given filter with draft documents excluded.
// The CMS marks in-progress documents with draft: true; absence of the
// field means published.
func published(filter bson.M) bson.M {
	filter["draft"] = bson.M{"$ne": true}
	return filter
}

// containsCI builds a case-insensitive substring match for a user-supplied
// term. The term is regex-escaped so metacharacters match literally.
func containsCI(term string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
}

// findSort is a shorthand for a Find with a sort order applied.
func findSort(sort bson.D) *options.FindOptions {
	return options.Find().SetSort(sort)
}
