// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/payaana/website/internal/app/system/leadsink"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "PAYAANA"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, lead_sink, etc.
//   - Environment variables: PAYAANA_MONGO_URI, PAYAANA_LEAD_SINK, etc.
//   - Command-line flags: --mongo_uri, --lead_sink, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "payaana", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},
	{Name: "cookie_domain", Default: "", Desc: "Cookie domain for the CSRF cookie (blank means current host)"},

	// Image CDN
	{Name: "image_base_url", Default: "", Desc: "CDN prefix for CMS image assets (blank uses the built-in default)"},

	// Lead delivery
	{Name: "lead_sink", Default: leadsink.KindLog, Desc: "Lead destination: 'log', 'store', or 'smtp'"},
	{Name: "lead_inbox_email", Default: "", Desc: "Sales inbox address for the smtp lead sink"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@payaana.in", Desc: "From email address"},
	{Name: "mail_from_name", Default: "Payaana Holidays", Desc: "From display name"},

	// Base URL for links
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Base URL for links"},

	// Navigation cache
	{Name: "nav_cache_ttl", Default: "5m", Desc: "How long the header services list is cached (e.g., 5m, 1h)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PAYAANA_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		CSRFKey:      appValues.String("csrf_key"),
		CookieDomain: appValues.String("cookie_domain"),

		ImageBaseURL: appValues.String("image_base_url"),

		LeadSink:       appValues.String("lead_sink"),
		LeadInboxEmail: appValues.String("lead_inbox_email"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),

		BaseURL: appValues.String("base_url"),

		NavCacheTTL: appValues.Duration("nav_cache_ttl", 5*time.Minute),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.LeadSink {
	case leadsink.KindLog, leadsink.KindStore:
	case leadsink.KindSMTP:
		if appCfg.LeadInboxEmail == "" {
			return fmt.Errorf("lead_sink is %q but lead_inbox_email is not set", leadsink.KindSMTP)
		}
	default:
		return fmt.Errorf("unknown lead_sink: %q", appCfg.LeadSink)
	}

	return nil
}
