// internal/app/store/catalog/packages.go
package catalog

import (
	"context"

	"github.com/payaana/website/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Packages returns all published packages, newest first, with the
// referenced destination's name and slug inlined.
func (s *Store) Packages(ctx context.Context) ([]models.Package, error) {
	return s.findPackages(ctx, published(bson.M{}),
		bson.D{{Key: "created_at", Value: -1}}, false)
}

// PackageBySlug returns the full package shape for a published package,
// or (nil, nil) if no published package has the slug.
func (s *Store) PackageBySlug(ctx context.Context, slug string) (*models.Package, error) {
	var doc packageDoc
	err := s.packages.FindOne(ctx, published(bson.M{"slug": slug})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dest, err := s.destinationRef(ctx, doc.DestinationID, false)
	if err != nil {
		return nil, err
	}
	pkg := doc.toModel(dest)
	return &pkg, nil
}

// PackagesByCategory returns published packages in the canonical category,
// ordered by display order then title. Legacy stored category values that
// normalize to the requested category are included.
func (s *Store) PackagesByCategory(ctx context.Context, category models.Category) ([]models.Package, error) {
	filter := published(bson.M{"category": bson.M{"$in": rawCategoryValues(category)}})
	return s.findPackages(ctx, filter,
		bson.D{{Key: "display_order", Value: 1}, {Key: "title", Value: 1}}, false)
}

// PackagesByCategoryWithDestinations is PackagesByCategory with the
// destination's image, location, and type inlined as well, for sections
// that need destination metadata without a second round trip.
func (s *Store) PackagesByCategoryWithDestinations(ctx context.Context, category models.Category) ([]models.Package, error) {
	filter := published(bson.M{"category": bson.M{"$in": rawCategoryValues(category)}})
	return s.findPackages(ctx, filter,
		bson.D{{Key: "display_order", Value: 1}, {Key: "title", Value: 1}}, true)
}

// FeaturedPackages returns published packages flagged for the home page,
// ordered by display order then title.
func (s *Store) FeaturedPackages(ctx context.Context) ([]models.Package, error) {
	return s.findPackages(ctx, published(bson.M{"is_featured": true}),
		bson.D{{Key: "display_order", Value: 1}, {Key: "title", Value: 1}}, false)
}

// MatchPackageByTitle returns the first published package whose title
// contains the term (case-insensitive), in the store's natural order, or
// (nil, nil) when nothing matches. Used by the search resolver.
func (s *Store) MatchPackageByTitle(ctx context.Context, term string) (*models.Package, error) {
	var doc packageDoc
	err := s.packages.FindOne(ctx, published(bson.M{"title": containsCI(term)})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	pkg := doc.toModel(nil)
	return &pkg, nil
}

// packagesReferencing returns refs of published packages that reference
// the destination, for inlining into a destination detail.
func (s *Store) packagesReferencing(ctx context.Context, destID primitive.ObjectID) ([]models.PackageRef, error) {
	cursor, err := s.packages.Find(ctx, published(bson.M{"destination_id": destID}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []packageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	refs := make([]models.PackageRef, 0, len(docs))
	for _, doc := range docs {
		refs = append(refs, doc.toRef())
	}
	return refs, nil
}

// findPackages runs a package query and joins the referenced destinations
// with a single $in lookup. full controls whether destination refs carry
// image/location/type.
func (s *Store) findPackages(ctx context.Context, filter bson.M, sort bson.D, full bool) ([]models.Package, error) {
	cursor, err := s.packages.Find(ctx, filter, findSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []packageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	refs, err := s.destinationRefsFor(ctx, docs, full)
	if err != nil {
		return nil, err
	}

	packages := make([]models.Package, 0, len(docs))
	for _, doc := range docs {
		var dest *models.DestinationRef
		if doc.DestinationID != nil {
			dest = refs[*doc.DestinationID]
		}
		packages = append(packages, doc.toModel(dest))
	}
	return packages, nil
}

// destinationRefsFor loads the destinations referenced by the given
// package documents in one query.
func (s *Store) destinationRefsFor(ctx context.Context, docs []packageDoc, full bool) (map[primitive.ObjectID]*models.DestinationRef, error) {
	var ids []primitive.ObjectID
	seen := make(map[primitive.ObjectID]bool)
	for _, doc := range docs {
		if doc.DestinationID != nil && !seen[*doc.DestinationID] {
			seen[*doc.DestinationID] = true
			ids = append(ids, *doc.DestinationID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := s.destinations.Find(ctx, published(bson.M{"_id": bson.M{"$in": ids}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var destDocs []destinationDoc
	if err := cursor.All(ctx, &destDocs); err != nil {
		return nil, err
	}

	refs := make(map[primitive.ObjectID]*models.DestinationRef, len(destDocs))
	for _, doc := range destDocs {
		refs[doc.ID] = doc.toRef(full)
	}
	return refs, nil
}

// destinationRef loads a single referenced destination, or nil if the
// reference is unset or the destination is unpublished.
func (s *Store) destinationRef(ctx context.Context, id *primitive.ObjectID, full bool) (*models.DestinationRef, error) {
	if id == nil {
		return nil, nil
	}
	var doc destinationDoc
	err := s.destinations.FindOne(ctx, published(bson.M{"_id": *id})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toRef(full), nil
}
