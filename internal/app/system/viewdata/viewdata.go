// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
	"github.com/payaana/website/internal/app/system/imageurl"
	"github.com/payaana/website/internal/domain/models"
)

// NavServiceVM is a service link in the header navigation dropdown.
type NavServiceVM struct {
	Title string
	Slug  string
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site identity
	SiteName string
	Tagline  string

	// Page context
	Title       string
	CurrentPath string

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)

	// Header navigation
	NavServices []NavServiceVM
}

// ServicesLoader is a function that loads the services for the header
// navigation. This is set by bootstrap to avoid circular dependencies;
// in production it reads through the nav cache.
type ServicesLoader func(ctx context.Context) []models.Service

var servicesLoader ServicesLoader

// imageBuilder resolves CMS image references for view models.
var imageBuilder = imageurl.New("")

// Init sets the image URL builder for view models.
// Call this once at startup from bootstrap.
func Init(images *imageurl.Builder) {
	if images != nil {
		imageBuilder = images
	}
}

// SetServicesLoader sets the function used to load header navigation
// services. Call this once at startup from bootstrap.
func SetServicesLoader(loader ServicesLoader) {
	servicesLoader = loader
}

// Images returns the configured image URL builder.
func Images() *imageurl.Builder {
	return imageBuilder
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	vm := BaseVM{
		SiteName:    models.DefaultSiteName,
		Tagline:     models.DefaultTagline,
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if servicesLoader != nil {
		for _, svc := range servicesLoader(r.Context()) {
			vm.NavServices = append(vm.NavServices, NavServiceVM{
				Title: svc.Title,
				Slug:  svc.Slug,
			})
		}
	}

	return vm
}
