// Package leadsink routes captured leads to their configured destination.
//
// The inquiry endpoints always acknowledge a valid submission; where the
// lead goes afterwards is deployment configuration. The sink can log the
// lead (the default, useful while the back office integration is not set
// up), persist it to the leads collection, or mail it to the sales inbox.
package leadsink

import (
	"context"
	"fmt"
	"time"

	leadstore "github.com/payaana/website/internal/app/store/leads"
	"github.com/payaana/website/internal/app/system/mailer"
	"github.com/payaana/website/internal/domain/models"
	"go.uber.org/zap"
)

// Sink delivers a validated lead somewhere useful.
type Sink interface {
	Deliver(ctx context.Context, lead models.Lead) error
}

// Kind values accepted in the lead_sink config setting.
const (
	KindLog   = "log"
	KindStore = "store"
	KindSMTP  = "smtp"
)

// SourceLabel returns the human-readable form label for a lead source.
func SourceLabel(source models.LeadSource) string {
	switch source {
	case models.LeadSourcePackage:
		return "Package inquiry"
	case models.LeadSourceService:
		return "Service inquiry"
	default:
		return "Contact form"
	}
}

// LogSink writes the lead to the application log and nothing else.
type LogSink struct {
	Logger *zap.Logger
}

// Deliver logs the lead. It never fails.
func (s LogSink) Deliver(ctx context.Context, lead models.Lead) error {
	s.Logger.Info("lead received",
		zap.String("reference", lead.Reference),
		zap.String("source", string(lead.Source)),
		zap.String("name", lead.Name),
		zap.String("email", lead.Email),
		zap.String("phone", lead.Phone),
		zap.String("package", lead.PackageName),
		zap.String("travelers", lead.Travelers),
	)
	return nil
}

// StoreSink persists the lead to the leads collection.
type StoreSink struct {
	Store *leadstore.Store
}

func (s StoreSink) Deliver(ctx context.Context, lead models.Lead) error {
	_, err := s.Store.Create(ctx, lead)
	return err
}

// MailSink emails the lead to the sales inbox.
type MailSink struct {
	Mailer   *mailer.Mailer
	Inbox    string
	SiteName string
}

func (s MailSink) Deliver(ctx context.Context, lead models.Lead) error {
	submitted := lead.SubmittedAt
	if submitted.IsZero() {
		submitted = time.Now().UTC()
	}

	text, html := mailer.LeadNotificationEmail(mailer.LeadNotificationData{
		SiteName:    s.SiteName,
		SourceLabel: SourceLabel(lead.Source),
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Message:     lead.Message,
		PackageName: lead.PackageName,
		Travelers:   lead.Travelers,
		TravelDate:  lead.TravelDate,
		SubmittedAt: submitted.Format("2 Jan 2006 15:04 MST"),
	})

	return s.Mailer.Send(mailer.Email{
		To:       s.Inbox,
		Subject:  fmt.Sprintf("%s: new inquiry from %s", s.SiteName, lead.Name),
		TextBody: text,
		HTMLBody: html,
	})
}
