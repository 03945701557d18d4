// internal/app/store/catalog/gallery.go
package catalog

import (
	"context"

	"github.com/payaana/website/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// GalleryImages returns published gallery images, optionally restricted
// to one category, ordered by display order then title.
func (s *Store) GalleryImages(ctx context.Context, category models.GalleryCategory) ([]models.GalleryImage, error) {
	filter := published(bson.M{})
	if category != "" {
		filter["category"] = string(category)
	}

	cursor, err := s.gallery.Find(ctx, filter,
		findSort(bson.D{{Key: "display_order", Value: 1}, {Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []galleryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	images := make([]models.GalleryImage, 0, len(docs))
	for _, doc := range docs {
		images = append(images, doc.toModel())
	}
	return images, nil
}
