// internal/app/features/services/services.go
package services

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/payaana/website/internal/app/features/errors"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/app/system/htmlsanitize"
	"github.com/payaana/website/internal/app/system/viewdata"
	"github.com/payaana/website/internal/domain/models"
	"go.uber.org/zap"
)

// relatedCount is how many related services the detail page shows.
const relatedCount = 3

// Handler provides the service listing and detail pages.
type Handler struct {
	content *content.Loader
	errors  *errors.Handler
	logger  *zap.Logger
}

// NewHandler creates a new services Handler.
func NewHandler(loader *content.Loader, errPages *errors.Handler, logger *zap.Logger) *Handler {
	return &Handler{
		content: loader,
		errors:  errPages,
		logger:  logger,
	}
}

// CardVM is a service card. At most one of IconEmoji and IconURL is set.
type CardVM struct {
	Title            string
	Slug             string
	ShortDescription string
	IconEmoji        string
	IconURL          string
}

// ListVM is the view model for the services listing page.
type ListVM struct {
	viewdata.BaseVM
	Services []CardVM
}

// DetailVM is the view model for a service detail page.
type DetailVM struct {
	viewdata.BaseVM
	ServiceTitle     string
	Slug             string
	Category         string
	ShortDescription string
	Description      template.HTML
	IconEmoji        string
	IconURL          string
	Related          []CardVM
}

// PackageCardVM is an education package card on the school trips page.
type PackageCardVM struct {
	Title     string
	Slug      string
	Duration  string
	Price     *int
	ImageURL  string
	Locations []string
}

// TripSectionVM is one education category section of the school trips page.
type TripSectionVM struct {
	Label    string
	Packages []PackageCardVM
}

// SchoolTripsVM is the view model for the education trips page.
type SchoolTripsVM struct {
	viewdata.BaseVM
	Sections []TripSectionVM
}

// Routes returns a chi.Router with service routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/"+SchoolTripsSlug, h.SchoolTrips)
	r.Get("/{slug}", h.Show)
	return r
}

// allServices returns the CMS services, or the seed catalogue when the CMS
// has none.
func (h *Handler) allServices(r *http.Request) []models.Service {
	services := h.content.Services(r.Context())
	if len(services) == 0 {
		services = seedServices
	}
	return services
}

// Index renders all services plus the education trips entry.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	services := append(h.allServices(r), schoolTripsService)

	vm := ListVM{BaseVM: viewdata.NewBaseVM(r, "Our Services")}
	for _, svc := range services {
		vm.Services = append(vm.Services, card(svc))
	}

	templates.Render(w, r, "services/index", vm)
}

// Show renders one service. CMS services win; unknown slugs fall back to
// the seed catalogue so pre-CMS links keep resolving.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	svc := h.content.ServiceBySlug(ctx, slug)
	if svc == nil {
		svc = staticBySlug(slug)
	}
	if svc == nil {
		h.errors.NotFound(w, r)
		return
	}

	description := svc.FullDescription
	if description == "" {
		description = svc.ShortDescription
	}

	vm := DetailVM{
		BaseVM:           viewdata.NewBaseVM(r, svc.Title),
		ServiceTitle:     svc.Title,
		Slug:             svc.Slug,
		Category:         svc.Category,
		ShortDescription: svc.ShortDescription,
		Description:      htmlsanitize.PrepareForDisplay(description),
	}
	vm.IconEmoji, vm.IconURL = iconViews(svc.Icon)

	for _, other := range h.allServices(r) {
		if other.Slug == slug {
			continue
		}
		vm.Related = append(vm.Related, card(other))
		if len(vm.Related) == relatedCount {
			break
		}
	}

	templates.Render(w, r, "services/show", vm)
}

// SchoolTrips renders the education trips page: the school and college
// packages grouped by trip type.
func (h *Handler) SchoolTrips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	school := h.content.PackagesByCategory(ctx, models.CategorySchoolProgrammes)
	college := h.content.PackagesByCategory(ctx, models.CategoryCollegeOutbounds)

	vm := SchoolTripsVM{BaseVM: viewdata.NewBaseVM(r, "School/College Trips and Camps")}
	for _, section := range []struct {
		label    string
		packages []models.Package
		tripType models.TripType
	}{
		{"School Study Tours", school, models.TripTypeStudyTours},
		{"School Outbound Camps", school, models.TripTypeOutboundCamps},
		{"College Study Tours", college, models.TripTypeStudyTours},
		{"College Industrial Visits", college, models.TripTypeIndustrialVisits},
		{"College Outbound Camps", college, models.TripTypeOutboundCamps},
	} {
		sec := TripSectionVM{Label: section.label}
		for _, pkg := range section.packages {
			if pkg.Type != section.tripType {
				continue
			}
			sec.Packages = append(sec.Packages, PackageCardVM{
				Title:     pkg.Title,
				Slug:      pkg.Slug,
				Duration:  pkg.Duration,
				Price:     pkg.Price,
				ImageURL:  viewdata.Images().Sized(pkg.Image, 800, 600),
				Locations: pkg.Locations,
			})
		}
		if len(sec.Packages) > 0 {
			vm.Sections = append(vm.Sections, sec)
		}
	}

	templates.Render(w, r, "services/school_trips", vm)
}

func card(svc models.Service) CardVM {
	vm := CardVM{
		Title:            svc.Title,
		Slug:             svc.Slug,
		ShortDescription: svc.ShortDescription,
	}
	vm.IconEmoji, vm.IconURL = iconViews(svc.Icon)
	return vm
}

// iconViews maps a decoded icon onto the pair of template fields. Image
// asset references resolve through the CDN; site-relative paths pass
// through untouched.
func iconViews(icon models.Icon) (emoji, url string) {
	switch icon.Kind {
	case models.IconEmoji:
		return icon.Value, ""
	case models.IconPath:
		return "", icon.Value
	case models.IconImageRef:
		return "", viewdata.Images().Sized(icon.Value, 256, 256)
	}
	return "", ""
}
