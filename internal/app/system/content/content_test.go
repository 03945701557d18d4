package content

import (
	"context"
	"testing"
	"time"

	"github.com/payaana/website/internal/app/store/catalog"
	"github.com/payaana/website/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestLoader_ReturnsStoreResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	loader := New(catalog.New(db), zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection(catalog.PackagesCollection).InsertOne(ctx, bson.M{
		"title": "Kerala Backwaters", "slug": "kerala-backwaters",
		"category": "domestic", "created_at": time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	packages := loader.Packages(ctx)
	if len(packages) != 1 || packages[0].Slug != "kerala-backwaters" {
		t.Errorf("Packages() = %v, want the inserted package", packages)
	}

	if pkg := loader.PackageBySlug(ctx, "missing"); pkg != nil {
		t.Errorf("PackageBySlug(missing) = %v, want nil", pkg)
	}
}

func TestLoader_CollapsesErrorsToEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	loader := New(catalog.New(db), zap.NewNop())

	// A canceled context makes every store call fail; the loader must
	// swallow that and hand back empty results.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if packages := loader.Packages(ctx); len(packages) != 0 {
		t.Errorf("Packages() with failing store = %v, want empty", packages)
	}
	if dest := loader.DestinationBySlug(ctx, "kerala"); dest != nil {
		t.Errorf("DestinationBySlug() with failing store = %v, want nil", dest)
	}
	if match := loader.MatchPackageByTitle(ctx, "kerala"); match != nil {
		t.Errorf("MatchPackageByTitle() with failing store = %v, want nil", match)
	}
}
