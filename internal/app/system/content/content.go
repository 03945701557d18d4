// Package content is the façade page handlers use to load CMS content.
//
// The catalog store returns errors; pages never show them. A content
// outage renders as empty sections rather than a 500, so the Loader logs
// every failure and collapses it to an empty result. Handlers can treat
// every return value as ready to render.
package content

import (
	"context"

	"github.com/payaana/website/internal/app/store/catalog"
	"github.com/payaana/website/internal/domain/models"
	"go.uber.org/zap"
)

// Loader wraps the catalog store with log-and-collapse error handling.
type Loader struct {
	store  *catalog.Store
	logger *zap.Logger
}

// New creates a Loader. A nil logger disables logging.
func New(store *catalog.Store, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{store: store, logger: logger}
}

func (l *Loader) collapse(op string, err error) {
	if err != nil {
		l.logger.Error("content load failed", zap.String("operation", op), zap.Error(err))
	}
}

// Packages returns all published packages, newest first.
func (l *Loader) Packages(ctx context.Context) []models.Package {
	packages, err := l.store.Packages(ctx)
	l.collapse("packages", err)
	return packages
}

// PackageBySlug returns a package detail, or nil when missing or unavailable.
func (l *Loader) PackageBySlug(ctx context.Context, slug string) *models.Package {
	pkg, err := l.store.PackageBySlug(ctx, slug)
	l.collapse("package_by_slug", err)
	return pkg
}

// PackagesByCategory returns the packages of one canonical category.
func (l *Loader) PackagesByCategory(ctx context.Context, category models.Category) []models.Package {
	packages, err := l.store.PackagesByCategory(ctx, category)
	l.collapse("packages_by_category", err)
	return packages
}

// PackagesByCategoryWithDestinations is PackagesByCategory with destination
// metadata inlined.
func (l *Loader) PackagesByCategoryWithDestinations(ctx context.Context, category models.Category) []models.Package {
	packages, err := l.store.PackagesByCategoryWithDestinations(ctx, category)
	l.collapse("packages_by_category_with_destinations", err)
	return packages
}

// FeaturedPackages returns the home page's featured packages.
func (l *Loader) FeaturedPackages(ctx context.Context) []models.Package {
	packages, err := l.store.FeaturedPackages(ctx)
	l.collapse("featured_packages", err)
	return packages
}

// Destinations returns all published destinations, name ascending.
func (l *Loader) Destinations(ctx context.Context) []models.Destination {
	destinations, err := l.store.Destinations(ctx)
	l.collapse("destinations", err)
	return destinations
}

// DestinationBySlug returns a destination detail, or nil when missing or
// unavailable.
func (l *Loader) DestinationBySlug(ctx context.Context, slug string) *models.Destination {
	dest, err := l.store.DestinationBySlug(ctx, slug)
	l.collapse("destination_by_slug", err)
	return dest
}

// PopularDestinations returns the popular destinations of one type.
func (l *Loader) PopularDestinations(ctx context.Context, destType models.DestinationType) []models.Destination {
	destinations, err := l.store.PopularDestinations(ctx, destType)
	l.collapse("popular_destinations", err)
	return destinations
}

// Services returns the CMS services, display order ascending.
func (l *Loader) Services(ctx context.Context) []models.Service {
	services, err := l.store.Services(ctx)
	l.collapse("services", err)
	return services
}

// ServiceBySlug returns a CMS service, or nil when missing or unavailable.
func (l *Loader) ServiceBySlug(ctx context.Context, slug string) *models.Service {
	svc, err := l.store.ServiceBySlug(ctx, slug)
	l.collapse("service_by_slug", err)
	return svc
}

// GalleryImages returns gallery images, optionally limited to one category.
func (l *Loader) GalleryImages(ctx context.Context, category models.GalleryCategory) []models.GalleryImage {
	images, err := l.store.GalleryImages(ctx, category)
	l.collapse("gallery_images", err)
	return images
}

// MatchDestinationByName returns the first destination whose name contains
// the term, or nil. Lookup failures count as no match so the search
// resolver can fall through to its fallback.
func (l *Loader) MatchDestinationByName(ctx context.Context, term string) *models.Destination {
	dest, err := l.store.MatchDestinationByName(ctx, term)
	l.collapse("match_destination", err)
	return dest
}

// MatchPackageByTitle returns the first package whose title contains the
// term, or nil. Lookup failures count as no match.
func (l *Loader) MatchPackageByTitle(ctx context.Context, term string) *models.Package {
	pkg, err := l.store.MatchPackageByTitle(ctx, term)
	l.collapse("match_package", err)
	return pkg
}
