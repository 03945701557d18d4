// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	destinationsfeature "github.com/payaana/website/internal/app/features/destinations"
	errorsfeature "github.com/payaana/website/internal/app/features/errors"
	galleryfeature "github.com/payaana/website/internal/app/features/gallery"
	healthfeature "github.com/payaana/website/internal/app/features/health"
	homefeature "github.com/payaana/website/internal/app/features/home"
	leadapifeature "github.com/payaana/website/internal/app/features/leadapi"
	packagesfeature "github.com/payaana/website/internal/app/features/packages"
	pagesfeature "github.com/payaana/website/internal/app/features/pages"
	searchfeature "github.com/payaana/website/internal/app/features/search"
	servicesfeature "github.com/payaana/website/internal/app/features/services"
	appresources "github.com/payaana/website/internal/app/resources"
	"github.com/payaana/website/internal/app/store/catalog"
	leadstore "github.com/payaana/website/internal/app/store/leads"
	"github.com/payaana/website/internal/app/system/content"
	"github.com/payaana/website/internal/app/system/imageurl"
	"github.com/payaana/website/internal/app/system/leadsink"
	"github.com/payaana/website/internal/app/system/navcache"
	"github.com/payaana/website/internal/app/system/viewdata"
	"github.com/payaana/website/internal/domain/models"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The site is split in two:
//   - Browser pages: server-rendered templates, CSRF protected
//   - /api routes: JSON endpoints called from page scripts (search box,
//     inquiry forms), exempt from CSRF since they carry no session
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Initialize viewdata with the image URL builder so templates can
	// resolve CMS asset references.
	viewdata.Init(imageurl.New(appCfg.ImageBaseURL))

	// Content loader over the catalog store. All public pages read
	// through it.
	catalogStore := catalog.New(deps.MongoDatabase)
	loader := content.New(catalogStore, logger)

	// Header navigation lists the services; cache the lookup so every
	// page render does not hit MongoDB.
	nav := navcache.New(appCfg.NavCacheTTL, loader.Services)
	viewdata.SetServicesLoader(nav.Services)

	// Error pages shared by the content handlers.
	errorsHandler := errorsfeature.NewHandler()

	// Pick the lead sink from config. ValidateConfig has already
	// rejected unknown kinds.
	var sink leadsink.Sink
	switch appCfg.LeadSink {
	case leadsink.KindStore:
		sink = leadsink.StoreSink{Store: leadstore.New(deps.MongoDatabase)}
	case leadsink.KindSMTP:
		sink = leadsink.MailSink{
			Mailer:   deps.Mailer,
			Inbox:    appCfg.LeadInboxEmail,
			SiteName: models.DefaultSiteName,
		}
	default:
		sink = leadsink.LogSink{Logger: logger}
	}
	logger.Info("lead sink configured", zap.String("kind", appCfg.LeadSink))

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// CSRF protection middleware with path-based exemption for API routes.
	// Cookie name is "payaana_csrf" to avoid collisions with other services
	// on the same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("payaana_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.CookieDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.CookieDomain))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	// Wrap CSRF middleware to skip the JSON API routes. The inquiry
	// endpoints are called from page scripts via fetch and have no
	// session to ride.
	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if strings.HasPrefix(req.URL.Path, "/api/") {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Static assets with pre-compressed file support (gzip/brotli)
	// /static/* serves files from disk (static directory)
	r.Handle("/static/*", fileserver.Handler("/static", "static"))

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// JSON API: search resolution and lead capture
	searchHandler := searchfeature.NewHandler(loader, logger)
	leadHandler := leadapifeature.NewHandler(sink, logger)
	r.Route("/api", func(ar chi.Router) {
		ar.Get("/search", searchHandler.API)
		ar.Mount("/", leadapifeature.Routes(leadHandler))
	})

	// Search box redirect (GET /search?q=...)
	r.Mount("/search", searchfeature.Routes(searchHandler))

	// Landing page
	homeHandler := homefeature.NewHandler(loader, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Holiday packages: listing with filters plus detail pages
	packagesHandler := packagesfeature.NewHandler(loader, errorsHandler, logger)
	r.Mount("/packages", packagesfeature.Routes(packagesHandler))

	// Destinations
	destinationsHandler := destinationsfeature.NewHandler(loader, errorsHandler, logger)
	r.Mount("/destinations", destinationsfeature.Routes(destinationsHandler))

	// Services, including the school and college trips page
	servicesHandler := servicesfeature.NewHandler(loader, errorsHandler, logger)
	r.Mount("/services", servicesfeature.Routes(servicesHandler))

	// Photo gallery
	galleryHandler := galleryfeature.NewHandler(loader, logger)
	r.Mount("/gallery", galleryfeature.Routes(galleryHandler))

	// Static content pages
	pagesHandler := pagesfeature.NewHandler(logger)
	r.Mount("/about", pagesHandler.AboutRouter())
	r.Mount("/contact", pagesHandler.ContactRouter())

	// 404 catch-all for unmatched routes
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
