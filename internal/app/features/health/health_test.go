package health

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/payaana/website/internal/testutil"
	"go.uber.org/zap"
)

func TestLive(t *testing.T) {
	h := NewHandler(nil, zap.NewNop())
	req := testutil.NewRequest(http.MethodGet, "/health/live")
	rec := testutil.NewRecorder()

	h.Live(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal error: %v", err)
	}
	if body["status"] != "alive" {
		t.Errorf("status = %q, want alive", body["status"])
	}
}

func TestCheck_WithDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db.Client(), zap.NewNop())
	req := testutil.NewRequest(http.MethodGet, "/health")
	rec := testutil.NewRecorder()

	h.Check(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal error: %v", err)
	}
	if body.Status != "ok" || body.Services["mongodb"] != "ok" {
		t.Errorf("Check() = %+v, want ok with mongodb ok", body)
	}
}

func TestRoutes(t *testing.T) {
	h := NewHandler(nil, zap.NewNop())
	if Routes(h) == nil {
		t.Fatal("Routes() returned nil")
	}
}
