// internal/app/features/home/home.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/app/system/viewdata"
	"github.com/payaana/website/internal/domain/models"
	"go.uber.org/zap"
)

// Handler provides home page handlers.
type Handler struct {
	content *content.Loader
	logger  *zap.Logger
}

// NewHandler creates a new home Handler.
func NewHandler(loader *content.Loader, logger *zap.Logger) *Handler {
	return &Handler{
		content: loader,
		logger:  logger,
	}
}

// DestinationCardVM is a destination teaser on the home page.
type DestinationCardVM struct {
	Name     string
	Slug     string
	Location string
	ImageURL string
}

// PackageCardVM is a package teaser card.
type PackageCardVM struct {
	Title    string
	Slug     string
	Duration string
	Price    *int
	ImageURL string
}

// HomeVM is the view model for the home page.
type HomeVM struct {
	viewdata.BaseVM
	DomesticDestinations      []DestinationCardVM
	InternationalDestinations []DestinationCardVM
	FeaturedPackages          []PackageCardVM
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the home page: hero with search, why-us cards, popular
// domestic and international destinations, and featured packages. Content
// sections render empty when the CMS has nothing for them.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vm := HomeVM{
		BaseVM: viewdata.NewBaseVM(r, ""),
	}

	for _, dest := range h.content.PopularDestinations(ctx, models.DestinationDomestic) {
		vm.DomesticDestinations = append(vm.DomesticDestinations, destinationCard(dest))
	}
	for _, dest := range h.content.PopularDestinations(ctx, models.DestinationInternational) {
		vm.InternationalDestinations = append(vm.InternationalDestinations, destinationCard(dest))
	}
	for _, pkg := range h.content.FeaturedPackages(ctx) {
		vm.FeaturedPackages = append(vm.FeaturedPackages, PackageCardVM{
			Title:    pkg.Title,
			Slug:     pkg.Slug,
			Duration: pkg.Duration,
			Price:    pkg.Price,
			ImageURL: viewdata.Images().Sized(pkg.Image, 800, 600),
		})
	}

	templates.Render(w, r, "home/index", vm)
}

func destinationCard(dest models.Destination) DestinationCardVM {
	return DestinationCardVM{
		Name:     dest.Name,
		Slug:     dest.Slug,
		Location: dest.Location,
		ImageURL: viewdata.Images().Sized(dest.Image, 600, 400),
	}
}
