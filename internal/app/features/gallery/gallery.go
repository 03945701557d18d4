// internal/app/features/gallery/gallery.go
package gallery

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/app/system/viewdata"
	"github.com/payaana/website/internal/domain/models"
	"go.uber.org/zap"
)

// Handler provides the gallery page.
type Handler struct {
	content *content.Loader
	logger  *zap.Logger
}

// NewHandler creates a new gallery Handler.
func NewHandler(loader *content.Loader, logger *zap.Logger) *Handler {
	return &Handler{
		content: loader,
		logger:  logger,
	}
}

// ImageVM is one gallery image.
type ImageVM struct {
	URL   string
	Title string
	Alt   string
}

// GalleryVM is the view model for the gallery page.
type GalleryVM struct {
	viewdata.BaseVM
	Active models.GalleryCategory
	Images []ImageVM
}

// Routes returns a chi.Router with the gallery route mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the tabbed gallery. The category query parameter selects
// the tab; anything unrecognized falls back to the customers tab.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := models.GalleryCategory(r.URL.Query().Get("category"))
	if category != models.GallerySchoolCollegeTrips {
		category = models.GalleryHappyCustomers
	}

	vm := GalleryVM{
		BaseVM: viewdata.NewBaseVM(r, "Gallery"),
		Active: category,
	}
	for _, img := range h.content.GalleryImages(ctx, category) {
		alt := img.Alt
		if alt == "" {
			alt = img.Title
		}
		vm.Images = append(vm.Images, ImageVM{
			URL:   viewdata.Images().Sized(img.Image, 800, 600),
			Title: img.Title,
			Alt:   alt,
		})
	}

	templates.Render(w, r, "gallery/index", vm)
}
