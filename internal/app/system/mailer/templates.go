// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"html/template"
	"strings"
)

// LeadNotificationData contains the data for the inquiry notification sent
// to the sales inbox when a lead comes in.
type LeadNotificationData struct {
	SiteName    string
	SourceLabel string // "Contact form" or "Package inquiry"
	Name        string
	Email       string
	Phone       string
	Message     string
	PackageName string // package inquiries only
	Travelers   string // package inquiries only
	TravelDate  string // package inquiries only
	SubmittedAt string // formatted timestamp
}

// LeadNotificationEmail generates both plain text and HTML versions of the
// inquiry notification email.
func LeadNotificationEmail(data LeadNotificationData) (textBody, htmlBody string) {
	var text strings.Builder
	text.WriteString("New inquiry via " + data.SourceLabel + "\n\n")
	text.WriteString("Name: " + data.Name + "\n")
	text.WriteString("Email: " + data.Email + "\n")
	text.WriteString("Phone: " + data.Phone + "\n")
	if data.PackageName != "" {
		text.WriteString("Package: " + data.PackageName + "\n")
	}
	if data.Travelers != "" {
		text.WriteString("Travelers: " + data.Travelers + "\n")
	}
	if data.TravelDate != "" {
		text.WriteString("Travel date: " + data.TravelDate + "\n")
	}
	if data.Message != "" {
		text.WriteString("\nMessage:\n" + data.Message + "\n")
	}
	text.WriteString("\nReceived " + data.SubmittedAt + "\n")
	textBody = text.String()

	var buf bytes.Buffer
	leadTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

var leadTmpl = template.Must(template.New("lead_notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Inquiry</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.SiteName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">New inquiry via {{.SourceLabel}}</h2>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="font-size: 15px; line-height: 1.8; color: #52525b;">
                <tr><td style="font-weight: 600; width: 110px;">Name</td><td>{{.Name}}</td></tr>
                <tr><td style="font-weight: 600;">Email</td><td><a href="mailto:{{.Email}}" style="color: #4f46e5;">{{.Email}}</a></td></tr>
                <tr><td style="font-weight: 600;">Phone</td><td>{{.Phone}}</td></tr>
                {{if .PackageName}}<tr><td style="font-weight: 600;">Package</td><td>{{.PackageName}}</td></tr>{{end}}
                {{if .Travelers}}<tr><td style="font-weight: 600;">Travelers</td><td>{{.Travelers}}</td></tr>{{end}}
                {{if .TravelDate}}<tr><td style="font-weight: 600;">Travel date</td><td>{{.TravelDate}}</td></tr>{{end}}
              </table>
              {{if .Message}}
              <p style="margin: 24px 0 8px 0; font-size: 15px; font-weight: 600; color: #18181b;">Message</p>
              <p style="margin: 0; font-size: 15px; line-height: 1.6; color: #52525b; white-space: pre-line;">{{.Message}}</p>
              {{end}}
            </td>
          </tr>
          <!-- Footer -->
          <tr>
            <td style="padding: 24px 32px; background-color: #fafafa; border-top: 1px solid #e4e4e7; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #a1a1aa; text-align: center;">
                Received {{.SubmittedAt}}
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))
