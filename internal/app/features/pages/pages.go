// internal/app/features/pages/pages.go
package pages

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/payaana/website/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler provides the static company pages.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new pages Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// StatVM is one entry of the about page stats band.
type StatVM struct {
	Number string
	Label  string
}

// AboutVM is the view model for the about page.
type AboutVM struct {
	viewdata.BaseVM
	Stats []StatVM
}

// ContactVM is the view model for the contact page.
type ContactVM struct {
	viewdata.BaseVM
}

// AboutRouter returns a router for the about page.
func (h *Handler) AboutRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.About)
	return r
}

// ContactRouter returns a router for the contact page.
func (h *Handler) ContactRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Contact)
	return r
}

// About renders the company story page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	vm := AboutVM{
		BaseVM: viewdata.NewBaseVM(r, "About Us"),
		Stats: []StatVM{
			{Number: "10K+", Label: "Happy Travelers"},
			{Number: "50+", Label: "Destinations"},
			{Number: "12+", Label: "Years Experience"},
			{Number: "98%", Label: "Satisfaction Rate"},
		},
	}

	templates.Render(w, r, "pages/about", vm)
}

// Contact renders the contact page with the inquiry form.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	vm := ContactVM{BaseVM: viewdata.NewBaseVM(r, "Contact Us")}

	templates.Render(w, r, "pages/contact", vm)
}
