// internal/app/features/packages/packages.go
package packages

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/payaana/website/internal/app/features/errors"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/app/system/packagefilter"
	"github.com/payaana/website/internal/app/system/viewdata"
	"github.com/payaana/website/internal/domain/models"
	"go.uber.org/zap"
)

// relatedCount is how many other packages the detail page suggests.
const relatedCount = 3

// Handler provides the package listing and detail pages.
type Handler struct {
	content *content.Loader
	errors  *errors.Handler
	logger  *zap.Logger
}

// NewHandler creates a new packages Handler.
func NewHandler(loader *content.Loader, errPages *errors.Handler, logger *zap.Logger) *Handler {
	return &Handler{
		content: loader,
		errors:  errPages,
		logger:  logger,
	}
}

// CardVM is a package card on the listing page.
type CardVM struct {
	Title           string
	Slug            string
	Duration        string
	Price           *int
	ImageURL        string
	DestinationName string
}

// SectionVM is one category section of the unfiltered listing page.
type SectionVM struct {
	Label    string
	Packages []CardVM
}

// ListVM is the view model for the listing page. When Filtering is true
// the page shows Results; otherwise it shows the category Sections.
type ListVM struct {
	viewdata.BaseVM
	Filters      packagefilter.Params
	Destinations []string
	Filtering    bool
	Results      []CardVM
	Sections     []SectionVM
}

// ItineraryDayVM is one day of the detail page itinerary.
type ItineraryDayVM struct {
	Number      int
	Title       string
	Description string
}

// DetailVM is the view model for the package detail page.
type DetailVM struct {
	viewdata.BaseVM
	PackageID       string
	PackageTitle    string
	Slug            string
	HeroImageURL    string
	Price           *int
	Duration        string
	Description     string
	Highlights      []string
	Itinerary       []ItineraryDayVM
	Locations       []string
	DestinationName string
	DestinationSlug string
	Related         []CardVM
}

// Routes returns a chi.Router with package routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/{slug}", h.Show)
	return r
}

// Index renders the package listing. With no filter active it shows the
// four category sections; any active search or filter replaces them with
// a single filtered results grid.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := packagefilter.FromQuery(r.URL.Query())

	vm := ListVM{
		BaseVM:  viewdata.NewBaseVM(r, "Holiday Packages"),
		Filters: params,
	}
	for _, dest := range h.content.Destinations(ctx) {
		vm.Destinations = append(vm.Destinations, dest.Name)
	}

	if params.IsZero() {
		for _, category := range []models.Category{
			models.CategorySpecialised,
			models.CategoryInternational,
			models.CategoryDomestic,
			models.CategoryFixedDeparture,
		} {
			section := SectionVM{Label: models.CategoryLabel(category)}
			for _, pkg := range h.content.PackagesByCategoryWithDestinations(ctx, category) {
				section.Packages = append(section.Packages, card(pkg))
			}
			if len(section.Packages) > 0 {
				vm.Sections = append(vm.Sections, section)
			}
		}
	} else {
		vm.Filtering = true
		for _, pkg := range packagefilter.Apply(h.content.Packages(ctx), params) {
			vm.Results = append(vm.Results, card(pkg))
		}
	}

	templates.Render(w, r, "packages/index", vm)
}

// Show renders the package detail page with itinerary, highlights, the
// inquiry form, and a few other packages to keep browsing.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	pkg := h.content.PackageBySlug(ctx, slug)
	if pkg == nil {
		h.errors.NotFound(w, r)
		return
	}

	vm := DetailVM{
		BaseVM:       viewdata.NewBaseVM(r, pkg.Title),
		PackageID:    pkg.ID,
		PackageTitle: pkg.Title,
		Slug:         pkg.Slug,
		HeroImageURL: viewdata.Images().Sized(pkg.Image, 1920, 1080),
		Price:        pkg.Price,
		Duration:     pkg.Duration,
		Description:  pkg.Description,
		Highlights:   pkg.Highlights,
		Locations:    pkg.Locations,
	}
	for i, day := range pkg.Itinerary {
		vm.Itinerary = append(vm.Itinerary, ItineraryDayVM{
			Number:      i + 1,
			Title:       day.Title,
			Description: day.Description,
		})
	}
	if pkg.Destination != nil {
		vm.DestinationName = pkg.Destination.Name
		vm.DestinationSlug = pkg.Destination.Slug
	}

	for _, other := range h.content.Packages(ctx) {
		if other.Slug == pkg.Slug {
			continue
		}
		vm.Related = append(vm.Related, card(other))
		if len(vm.Related) == relatedCount {
			break
		}
	}

	templates.Render(w, r, "packages/show", vm)
}

func card(pkg models.Package) CardVM {
	vm := CardVM{
		Title:    pkg.Title,
		Slug:     pkg.Slug,
		Duration: pkg.Duration,
		Price:    pkg.Price,
		ImageURL: viewdata.Images().Sized(pkg.Image, 800, 600),
	}
	if pkg.Destination != nil {
		vm.DestinationName = pkg.Destination.Name
	}
	return vm
}
