// internal/app/features/destinations/destinations.go
package destinations

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/payaana/website/internal/app/features/errors"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/app/system/viewdata"
	"github.com/payaana/website/internal/domain/models"
	"go.uber.org/zap"
)

// Handler provides the destination listing and detail pages.
type Handler struct {
	content *content.Loader
	errors  *errors.Handler
	logger  *zap.Logger
}

// NewHandler creates a new destinations Handler.
func NewHandler(loader *content.Loader, errPages *errors.Handler, logger *zap.Logger) *Handler {
	return &Handler{
		content: loader,
		errors:  errPages,
		logger:  logger,
	}
}

// CardVM is a destination card on the listing page.
type CardVM struct {
	Name     string
	Slug     string
	Location string
	Type     models.DestinationType
	ImageURL string
}

// ListVM is the view model for the destination listing page.
type ListVM struct {
	viewdata.BaseVM
	Destinations []CardVM
}

// PackageCardVM is a package teaser on the destination detail page.
type PackageCardVM struct {
	Title    string
	Slug     string
	Duration string
	Price    *int
	ImageURL string
}

// DetailVM is the view model for the destination detail page.
type DetailVM struct {
	viewdata.BaseVM
	Name         string
	Location     string
	Description  string
	HeroImageURL string
	Packages     []PackageCardVM
}

// Routes returns a chi.Router with destination routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/{slug}", h.Show)
	return r
}

// Index renders all destinations, name ascending.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vm := ListVM{BaseVM: viewdata.NewBaseVM(r, "Destinations")}
	for _, dest := range h.content.Destinations(ctx) {
		vm.Destinations = append(vm.Destinations, CardVM{
			Name:     dest.Name,
			Slug:     dest.Slug,
			Location: dest.Location,
			Type:     dest.Type,
			ImageURL: viewdata.Images().Sized(dest.Image, 600, 400),
		})
	}

	templates.Render(w, r, "destinations/index", vm)
}

// Show renders a destination with the packages that visit it.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	dest := h.content.DestinationBySlug(ctx, slug)
	if dest == nil {
		h.errors.NotFound(w, r)
		return
	}

	vm := DetailVM{
		BaseVM:       viewdata.NewBaseVM(r, dest.Name),
		Name:         dest.Name,
		Location:     dest.Location,
		Description:  dest.Description,
		HeroImageURL: viewdata.Images().Sized(dest.Image, 1920, 1080),
	}
	for _, pkg := range dest.FeaturedPackages {
		vm.Packages = append(vm.Packages, PackageCardVM{
			Title:    pkg.Title,
			Slug:     pkg.Slug,
			Duration: pkg.Duration,
			Price:    pkg.Price,
			ImageURL: viewdata.Images().Sized(pkg.Image, 800, 600),
		})
	}

	templates.Render(w, r, "destinations/show", vm)
}
