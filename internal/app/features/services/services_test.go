package services

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/payaana/website/internal/app/features/errors"
	"github.com/payaana/website/internal/app/store/catalog"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *mongo.Database) {
	t.Helper()
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	loader := content.New(catalog.New(db), zap.NewNop())
	return NewHandler(loader, errors.NewHandler(), zap.NewNop()), db
}

func TestIndex_CMSServices(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection(catalog.ServicesCollection).InsertOne(ctx, bson.M{
		"title": "Forex Cards", "slug": "forex-cards",
		"short_description": "Prepaid forex cards at good rates.",
		"display_order":     1,
	})
	if err != nil {
		t.Fatalf("insert service: %v", err)
	}

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/")
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Forex Cards")
	rec.AssertContains(t, "School/College Trips and Camps")
	if strings.Contains(rec.Body.String(), "Air Ticketing") {
		t.Error("seed services shown although the CMS has services")
	}
}

func TestIndex_SeedFallback(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/")
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Air Ticketing")
	rec.AssertContains(t, "Visa Assistance")
	rec.AssertContains(t, "School/College Trips and Camps")
}

func TestShow_CMSWinsOverSeed(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection(catalog.ServicesCollection).InsertOne(ctx, bson.M{
		"title": "Air Ticketing Plus", "slug": "air-ticketing",
		"short_description": "Updated ticketing desk.",
		"full_description":  "Now with <strong>group fares</strong>.",
	})
	if err != nil {
		t.Fatalf("insert service: %v", err)
	}

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/air-ticketing")
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Air Ticketing Plus")
	rec.AssertContains(t, "<strong>group fares</strong>")
}

func TestShow_SeedFallback(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/cruise-booking")
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Cruise Booking")
	rec.AssertContains(t, "Related Services")
}

func TestShow_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/teleportation")
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestSchoolTrips(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection(catalog.PackagesCollection).InsertMany(ctx, []interface{}{
		bson.M{
			"title": "Mysore Science Tour", "slug": "mysore-science-tour",
			"category": "school-study-tours",
			"locations": []string{"Mysore", "Srirangapatna"},
			"created_at": time.Now().UTC(),
		},
		bson.M{
			"title": "Coorg Adventure Camp", "slug": "coorg-adventure-camp",
			"category": "school-outbound-camps", "created_at": time.Now().UTC(),
		},
	})
	if err != nil {
		t.Fatalf("insert packages: %v", err)
	}

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/"+SchoolTripsSlug)
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "School Study Tours")
	rec.AssertContains(t, "Mysore Science Tour")
	rec.AssertContains(t, "School Outbound Camps")
	rec.AssertContains(t, "Coorg Adventure Camp")
}

func TestStaticBySlug(t *testing.T) {
	if svc := staticBySlug("travel-insurance"); svc == nil || svc.Title != "Travel Insurance" {
		t.Errorf("staticBySlug(travel-insurance) = %v", svc)
	}
	if svc := staticBySlug("unknown"); svc != nil {
		t.Errorf("staticBySlug(unknown) = %v, want nil", svc)
	}
}
