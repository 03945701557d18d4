package pages

import (
	"net/http"
	"testing"

	"github.com/payaana/website/internal/testutil"
	"go.uber.org/zap"
)

func TestAbout(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler(zap.NewNop())

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/")
	rec := testutil.NewRecorder()
	h.AboutRouter().ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "About Payaana")
	rec.AssertContains(t, "Your Journey Begins With Our Story")
	rec.AssertContains(t, "Happy Travelers")
}

func TestContact(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler(zap.NewNop())

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/")
	rec := testutil.NewRecorder()
	h.ContactRouter().ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Contact Us")
	rec.AssertContains(t, "/api/contact")
	rec.AssertContains(t, "info@payaana.in")
}
