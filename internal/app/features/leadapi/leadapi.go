// internal/app/features/leadapi/leadapi.go
package leadapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/payaana/website/internal/app/system/htmlsanitize"
	"github.com/payaana/website/internal/app/system/inputval"
	"github.com/payaana/website/internal/app/system/jsonutil"
	"github.com/payaana/website/internal/app/system/leadsink"
	"github.com/payaana/website/internal/domain/models"
	"go.uber.org/zap"
)

// Response messages. The front-end form scripts display these verbatim,
// so they are part of the endpoint contract.
const (
	msgContactMissing = "Name, email, and message are required"
	msgInquiryMissing = "Name, email, phone, and number of travelers are required"
	msgInvalidEmail   = "Invalid email format"
	msgContactThanks  = "Thank you! Your message has been received. We'll get back to you soon."
	msgInquiryThanks  = "Thank you! Your inquiry has been submitted. We'll get back to you soon."
	msgServerError    = "Something went wrong. Please try again later."
)

// Handler provides the lead submission endpoints.
type Handler struct {
	sink   leadsink.Sink
	logger *zap.Logger
}

// NewHandler creates a new lead API Handler.
func NewHandler(sink leadsink.Sink, logger *zap.Logger) *Handler {
	return &Handler{
		sink:   sink,
		logger: logger,
	}
}

// ContactRequest is the contact form submission body.
type ContactRequest struct {
	Name    string `json:"name" validate:"max=120" label:"Name"`
	Email   string `json:"email" validate:"max=254" label:"Email"`
	Phone   string `json:"phone" validate:"max=40" label:"Phone"`
	Message string `json:"message" validate:"max=5000" label:"Message"`
}

// PackageInquiryRequest is the package inquiry form submission body.
type PackageInquiryRequest struct {
	Name        string `json:"name" validate:"max=120" label:"Name"`
	Email       string `json:"email" validate:"max=254" label:"Email"`
	Phone       string `json:"phone" validate:"max=40" label:"Phone"`
	Travelers   string `json:"travelers" validate:"max=40" label:"Number of travelers"`
	TravelDate  string `json:"travelDate" validate:"max=40" label:"Travel date"`
	Message     string `json:"message" validate:"max=5000" label:"Message"`
	PackageName string `json:"packageName" validate:"max=200" label:"Package name"`
	PackageID   string `json:"packageId" validate:"max=64" label:"Package id"`
}

// Routes returns a chi.Router with the lead endpoints mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/contact", h.Contact)
	r.Post("/package-inquiry", h.PackageInquiry)
	return r
}

// Contact accepts a contact form submission.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		h.logger.Error("contact form: bad request body", zap.Error(err))
		jsonutil.Message(w, http.StatusInternalServerError, msgServerError)
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		jsonutil.Message(w, http.StatusBadRequest, msgContactMissing)
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		jsonutil.Message(w, http.StatusBadRequest, msgInvalidEmail)
		return
	}
	if result := inputval.Validate(req); result.HasErrors() {
		jsonutil.Message(w, http.StatusBadRequest, result.First())
		return
	}

	phone := htmlsanitize.StripTags(req.Phone)
	if phone == "" {
		phone = "Not provided"
	}

	h.deliver(r, models.Lead{
		Name:    htmlsanitize.StripTags(req.Name),
		Email:   htmlsanitize.StripTags(req.Email),
		Phone:   phone,
		Message: htmlsanitize.StripTags(req.Message),
		Source:  models.LeadSourceContact,
	})

	jsonutil.OK(w, map[string]any{"message": msgContactThanks, "success": true})
}

// PackageInquiry accepts a package inquiry submission.
func (h *Handler) PackageInquiry(w http.ResponseWriter, r *http.Request) {
	var req PackageInquiryRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		h.logger.Error("package inquiry: bad request body", zap.Error(err))
		jsonutil.Message(w, http.StatusInternalServerError, msgServerError)
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Travelers == "" {
		jsonutil.Message(w, http.StatusBadRequest, msgInquiryMissing)
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		jsonutil.Message(w, http.StatusBadRequest, msgInvalidEmail)
		return
	}
	if result := inputval.Validate(req); result.HasErrors() {
		jsonutil.Message(w, http.StatusBadRequest, result.First())
		return
	}

	h.deliver(r, models.Lead{
		Name:        htmlsanitize.StripTags(req.Name),
		Email:       htmlsanitize.StripTags(req.Email),
		Phone:       htmlsanitize.StripTags(req.Phone),
		Message:     htmlsanitize.StripTags(req.Message),
		Travelers:   htmlsanitize.StripTags(req.Travelers),
		TravelDate:  htmlsanitize.StripTags(req.TravelDate),
		PackageID:   htmlsanitize.StripTags(req.PackageID),
		PackageName: htmlsanitize.StripTags(req.PackageName),
		Source:      models.LeadSourcePackage,
	})

	jsonutil.OK(w, map[string]any{"message": msgInquiryThanks, "success": true})
}

// deliver stamps the lead with a reference and hands it to the sink. The
// reference ties log lines, stored documents, and notification emails for
// the same submission together. A sink failure is logged but never turns a
// valid submission into an error response; the visitor's inquiry is
// acknowledged regardless.
func (h *Handler) deliver(r *http.Request, lead models.Lead) {
	lead.Reference = uuid.NewString()
	lead.Status = models.LeadStatusNew
	lead.SubmittedAt = time.Now().UTC()

	if err := h.sink.Deliver(r.Context(), lead); err != nil {
		h.logger.Error("lead delivery failed",
			zap.String("source", string(lead.Source)),
			zap.String("reference", lead.Reference),
			zap.Error(err),
		)
	}
}
