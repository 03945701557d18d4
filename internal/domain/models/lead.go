// internal/domain/models/lead.go
package models

import "time"

// LeadSource records which form produced a lead.
type LeadSource string

const (
	LeadSourceContact LeadSource = "contact"
	LeadSourcePackage LeadSource = "package"
	LeadSourceService LeadSource = "service"
)

// LeadStatus tracks a lead through the sales pipeline. Status transitions
// happen out-of-band (back office); this application only creates leads
// with StatusNew.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusClosed    LeadStatus = "closed"
)

// Lead is a prospective-customer inquiry captured from a form submission.
// Leads are the only entity this application creates.
type Lead struct {
	ID          string     `json:"id,omitempty"`
	Reference   string     `json:"reference,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Message     string     `json:"message,omitempty"`
	Source      LeadSource `json:"source"`
	Travelers   string     `json:"travelers,omitempty"`
	TravelDate  string     `json:"travelDate,omitempty"`
	PackageID   string     `json:"packageId,omitempty"`
	PackageName string     `json:"packageName,omitempty"`
	Status      LeadStatus `json:"status"`
	SubmittedAt time.Time  `json:"submittedAt"`
	Notes       string     `json:"notes,omitempty"`
}
