package search

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/payaana/website/internal/app/store/catalog"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewHandler(content.New(catalog.New(db), zap.NewNop()), zap.NewNop()), db
}

func seedContent(t *testing.T, db *mongo.Database) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection(catalog.DestinationsCollection).InsertOne(ctx, bson.M{
		"name": "Kerala", "slug": "kerala", "type": "domestic",
	})
	if err != nil {
		t.Fatalf("insert destination: %v", err)
	}
	_, err = db.Collection(catalog.PackagesCollection).InsertOne(ctx, bson.M{
		"title": "Golden Triangle Tour", "slug": "golden-triangle-tour",
		"category": "domestic", "created_at": time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert package: %v", err)
	}
}

func TestResolve(t *testing.T) {
	h, db := newTestHandler(t)
	seedContent(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tests := []struct {
		query    string
		wantType string
		wantURL  string
	}{
		{"", KindEmpty, "/packages"},
		{"   ", KindEmpty, "/packages"},
		{"kerala", KindDestination, "/destinations/kerala"},
		{"golden triangle", KindPackage, "/packages/golden-triangle-tour"},
		{"himalayan trek", KindSearch, "/packages?search=himalayan+trek"},
	}
	for _, tt := range tests {
		got := h.Resolve(ctx, tt.query)
		if got.Type != tt.wantType || got.URL != tt.wantURL {
			t.Errorf("Resolve(%q) = %+v, want {%s %s}", tt.query, got, tt.wantType, tt.wantURL)
		}
	}
}

// Blank input must resolve without touching the store. Under a canceled
// context every store lookup fails and a resolver that queried anyway
// would fall through to the search fallback instead of KindEmpty.
func TestResolve_EmptyInputSkipsLookups(t *testing.T) {
	h, db := newTestHandler(t)
	seedContent(t, db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, query := range []string{"", "   "} {
		got := h.Resolve(ctx, query)
		if got.Type != KindEmpty || got.URL != "/packages" {
			t.Errorf("Resolve(%q) = %+v, want {%s /packages}", query, got, KindEmpty)
		}
	}
}

func TestResolve_DestinationWinsOverPackage(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection(catalog.DestinationsCollection).InsertOne(ctx, bson.M{
		"name": "Goa", "slug": "goa", "type": "domestic",
	})
	if err != nil {
		t.Fatalf("insert destination: %v", err)
	}
	_, err = db.Collection(catalog.PackagesCollection).InsertOne(ctx, bson.M{
		"title": "Goa Beach Escape", "slug": "goa-beach-escape",
		"category": "domestic", "created_at": time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert package: %v", err)
	}

	got := h.Resolve(ctx, "goa")
	if got.Type != KindDestination || got.URL != "/destinations/goa" {
		t.Errorf("Resolve(goa) = %+v, want the destination", got)
	}
}

func TestRedirect(t *testing.T) {
	h, db := newTestHandler(t)
	seedContent(t, db)

	req := testutil.NewRequest(http.MethodGet, "/?q=kerala")
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/destinations/kerala")
}

func TestAPI(t *testing.T) {
	h, db := newTestHandler(t)
	seedContent(t, db)

	req := testutil.NewRequest(http.MethodGet, "/api/search?q=golden")
	rec := testutil.NewRecorder()
	h.API(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var got Result
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if got.Type != KindPackage || got.URL != "/packages/golden-triangle-tour" {
		t.Errorf("API result = %+v", got)
	}
}
