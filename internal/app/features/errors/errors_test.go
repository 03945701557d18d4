package errors

import (
	"net/http"
	"testing"

	"github.com/payaana/website/internal/testutil"
)

func TestNotFound(t *testing.T) {
	testutil.MustBootTemplates(t)

	h := NewHandler()
	req := testutil.NewRequestWithCSRF(http.MethodGet, "/no-such-page")
	rec := testutil.NewRecorder()

	h.NotFound(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "404")
}

func TestInternalError(t *testing.T) {
	testutil.MustBootTemplates(t)

	h := NewHandler()
	req := testutil.NewRequestWithCSRF(http.MethodGet, "/")
	rec := testutil.NewRecorder()

	h.InternalError(rec, req)

	rec.AssertStatus(t, http.StatusInternalServerError)
}
