// internal/app/store/catalog/destinations.go
package catalog

import (
	"context"

	"github.com/payaana/website/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Destinations returns all published destinations, ordered by name.
func (s *Store) Destinations(ctx context.Context) ([]models.Destination, error) {
	return s.findDestinations(ctx, published(bson.M{}),
		bson.D{{Key: "name", Value: 1}})
}

// DestinationBySlug returns a published destination with the published
// packages that reference it inlined, or (nil, nil) when no published
// destination has the slug.
func (s *Store) DestinationBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	var doc destinationDoc
	err := s.destinations.FindOne(ctx, published(bson.M{"slug": slug})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dest := doc.toModel()
	dest.FeaturedPackages, err = s.packagesReferencing(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

// PopularDestinations returns published destinations of the given type
// flagged as popular, ordered by display order then name.
func (s *Store) PopularDestinations(ctx context.Context, destType models.DestinationType) ([]models.Destination, error) {
	filter := published(bson.M{"type": string(destType), "is_popular": true})
	return s.findDestinations(ctx, filter,
		bson.D{{Key: "display_order", Value: 1}, {Key: "name", Value: 1}})
}

// MatchDestinationByName returns the first published destination whose
// name contains the term (case-insensitive), in the store's natural
// order, or (nil, nil) when nothing matches. Used by the search resolver.
func (s *Store) MatchDestinationByName(ctx context.Context, term string) (*models.Destination, error) {
	var doc destinationDoc
	err := s.destinations.FindOne(ctx, published(bson.M{"name": containsCI(term)})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dest := doc.toModel()
	return &dest, nil
}

func (s *Store) findDestinations(ctx context.Context, filter bson.M, sort bson.D) ([]models.Destination, error) {
	cursor, err := s.destinations.Find(ctx, filter, findSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []destinationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	destinations := make([]models.Destination, 0, len(docs))
	for _, doc := range docs {
		destinations = append(destinations, doc.toModel())
	}
	return destinations, nil
}
