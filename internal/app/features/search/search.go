// internal/app/features/search/search.go
package search

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Result kinds, in resolution priority order.
const (
	KindEmpty       = "empty"
	KindDestination = "destination"
	KindPackage     = "package"
	KindSearch      = "search"
)

// Result is where a search query leads.
type Result struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Handler provides the site search endpoints.
type Handler struct {
	content *content.Loader
	logger  *zap.Logger
}

// NewHandler creates a new search Handler.
func NewHandler(loader *content.Loader, logger *zap.Logger) *Handler {
	return &Handler{
		content: loader,
		logger:  logger,
	}
}

// Routes returns a chi.Router with the browser search route mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Redirect)
	return r
}

// Resolve maps a query onto the page it should land on. A destination
// name match wins over a package title match; anything else falls through
// to the filtered package listing. A blank query goes to the unfiltered
// listing without touching the store.
func (h *Handler) Resolve(ctx context.Context, query string) Result {
	term := strings.TrimSpace(query)
	if term == "" {
		return Result{Type: KindEmpty, URL: "/packages"}
	}

	if dest := h.content.MatchDestinationByName(ctx, term); dest != nil {
		return Result{Type: KindDestination, URL: "/destinations/" + dest.Slug}
	}
	if pkg := h.content.MatchPackageByTitle(ctx, term); pkg != nil {
		return Result{Type: KindPackage, URL: "/packages/" + pkg.Slug}
	}

	return Result{Type: KindSearch, URL: "/packages?search=" + url.QueryEscape(term)}
}

// Redirect sends the browser to the resolved page.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	result := h.Resolve(r.Context(), r.URL.Query().Get("q"))
	http.Redirect(w, r, result.URL, http.StatusSeeOther)
}

// API returns the resolved target as JSON for client-side search boxes.
func (h *Handler) API(w http.ResponseWriter, r *http.Request) {
	result := h.Resolve(r.Context(), r.URL.Query().Get("q"))
	jsonutil.JSON(w, http.StatusOK, result)
}
