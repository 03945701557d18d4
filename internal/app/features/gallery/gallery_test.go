package gallery

import (
	"net/http"
	"strings"
	"testing"

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
	return NewHandler(content.New(catalog.New(db), zap.NewNop()), zap.NewNop()), db
}

func seedImages(t *testing.T, db *mongo.Database) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection(catalog.GalleryCollection).InsertMany(ctx, []interface{}{
		bson.M{
			"image": "https://example.com/beach.jpg", "title": "Beach sunset",
			"category": "happyCustomers", "display_order": 1,
		},
		bson.M{
			"image": "https://example.com/camp.jpg", "title": "Campfire night",
			"category": "schoolCollegeTrips", "display_order": 1,
		},
	})
	if err != nil {
		t.Fatalf("insert images: %v", err)
	}
}

func TestIndex_DefaultTab(t *testing.T) {
	h, db := newTestHandler(t)
	seedImages(t, db)

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/")
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Beach sunset")
	if strings.Contains(rec.Body.String(), "Campfire night") {
		t.Error("default tab shows images from the other category")
	}
}

func TestIndex_SchoolTripsTab(t *testing.T) {
	h, db := newTestHandler(t)
	seedImages(t, db)

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/?category=schoolCollegeTrips")
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Campfire night")
	if strings.Contains(rec.Body.String(), "Beach sunset") {
		t.Error("school trips tab shows images from the other category")
	}
}

func TestIndex_UnknownCategoryFallsBack(t *testing.T) {
	h, db := newTestHandler(t)
	seedImages(t, db)

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/?category=nonsense")
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Beach sunset")
}
