// internal/app/store/catalog/services.go
package catalog

import (
	"context"

	"github.com/payaana/website/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Services returns all published services, ordered by display order then
// title. The hard-coded static services live in the services feature, not
// here; this store only knows the CMS.
func (s *Store) Services(ctx context.Context) ([]models.Service, error) {
	cursor, err := s.services.Find(ctx, published(bson.M{}),
		findSort(bson.D{{Key: "display_order", Value: 1}, {Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []serviceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(docs))
	for _, doc := range docs {
		services = append(services, doc.toModel())
	}
	return services, nil
}

// ServiceBySlug returns a published service by slug, or (nil, nil) when
// no published service has the slug.
func (s *Store) ServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var doc serviceDoc
	err := s.services.FindOne(ctx, published(bson.M{"slug": slug})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	svc := doc.toModel()
	return &svc, nil
}
