// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, CORS, and request limits. AppConfig is where
// everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// CSRF protection configuration
	CSRFKey      string // Secret key for CSRF token signing (32 bytes, must be strong in production)
	CookieDomain string // Cookie domain for the CSRF cookie (blank means current host)

	// Image CDN configuration
	ImageBaseURL string // CDN prefix for CMS image assets (blank uses the built-in default)

	// Lead delivery configuration
	LeadSink       string // Where captured leads go: "log", "store", or "smtp"
	LeadInboxEmail string // Sales inbox for the smtp sink

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@payaana.in)
	MailFromName string // From display name

	// Base URL used in links (emails, canonical URLs)
	BaseURL string // e.g., "https://payaana.in" or "http://localhost:8080"

	// Navigation cache configuration
	NavCacheTTL time.Duration // How long the header services dropdown is cached (default: 5m)
}
