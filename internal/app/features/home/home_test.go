package home

import (
	"net/http"
	"testing"
	"time"

	"github.com/payaana/website/internal/app/store/catalog"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestIndex(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection(catalog.DestinationsCollection).InsertMany(ctx, []interface{}{
		bson.M{
			"name": "Goa", "slug": "goa", "type": "domestic",
			"is_popular": true, "display_order": 1,
		},
		bson.M{
			"name": "Bali", "slug": "bali", "type": "international",
			"is_popular": true, "display_order": 1,
		},
	})
	if err != nil {
		t.Fatalf("insert destinations: %v", err)
	}
	_, err = db.Collection(catalog.PackagesCollection).InsertOne(ctx, bson.M{
		"title": "Goa Beach Escape", "slug": "goa-beach-escape",
		"category": "domestic", "is_featured": true, "duration": "4 Days / 3 Nights",
		"created_at": time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert package: %v", err)
	}

	h := NewHandler(content.New(catalog.New(db), zap.NewNop()), zap.NewNop())
	req := testutil.NewRequestWithCSRF(http.MethodGet, "/")
	rec := testutil.NewRecorder()

	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Explore the World, One Journey at a Time")
	rec.AssertContains(t, "Popular Domestic Holiday Destinations")
	rec.AssertContains(t, "Explore amazing destinations within India")
	rec.AssertContains(t, "Popular International Holiday Destinations")
	rec.AssertContains(t, "Goa")
	rec.AssertContains(t, "Bali")
	rec.AssertContains(t, "Goa Beach Escape")
	rec.AssertContains(t, "/packages/goa-beach-escape")
}

func TestIndex_EmptyContent(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)

	h := NewHandler(content.New(catalog.New(db), zap.NewNop()), zap.NewNop())
	req := testutil.NewRequestWithCSRF(http.MethodGet, "/")
	rec := testutil.NewRecorder()

	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Why Travel With Us")
}
