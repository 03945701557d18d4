// internal/app/store/leads/leadstore.go

// Package leadstore persists inquiry leads captured from the contact and
// package inquiry forms. This is the only collection the website writes to;
// all content collections are CMS-owned and read-only.
package leadstore

import (
	"context"
	"errors"
	"time"

	"github.com/payaana/website/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeadsCollection is the collection name for captured leads.
const LeadsCollection = "leads"

var (
	// ErrNotFound is returned when a lead ID does not match any document.
	ErrNotFound = errors.New("lead not found")
	// ErrInvalidStatus is returned for a status outside the pipeline values.
	ErrInvalidStatus = errors.New("invalid lead status")
)

var validStatuses = map[models.LeadStatus]bool{
	models.LeadStatusNew:       true,
	models.LeadStatusContacted: true,
	models.LeadStatusQualified: true,
	models.LeadStatusConverted: true,
	models.LeadStatusClosed:    true,
}

type leadDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Reference   string             `bson:"reference,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone,omitempty"`
	Message     string             `bson:"message,omitempty"`
	Source      string             `bson:"source"`
	Travelers   string             `bson:"travelers,omitempty"`
	TravelDate  string             `bson:"travel_date,omitempty"`
	PackageID   string             `bson:"package_id,omitempty"`
	PackageName string             `bson:"package_name,omitempty"`
	Status      string             `bson:"status"`
	SubmittedAt time.Time          `bson:"submitted_at"`
	Notes       string             `bson:"notes,omitempty"`
}

func fromModel(l models.Lead) leadDoc {
	return leadDoc{
		Reference:   l.Reference,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		Message:     l.Message,
		Source:      string(l.Source),
		Travelers:   l.Travelers,
		TravelDate:  l.TravelDate,
		PackageID:   l.PackageID,
		PackageName: l.PackageName,
		Status:      string(l.Status),
		SubmittedAt: l.SubmittedAt,
		Notes:       l.Notes,
	}
}

func (d leadDoc) toModel() models.Lead {
	return models.Lead{
		ID:          d.ID.Hex(),
		Reference:   d.Reference,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Message:     d.Message,
		Source:      models.LeadSource(d.Source),
		Travelers:   d.Travelers,
		TravelDate:  d.TravelDate,
		PackageID:   d.PackageID,
		PackageName: d.PackageName,
		Status:      models.LeadStatus(d.Status),
		SubmittedAt: d.SubmittedAt,
		Notes:       d.Notes,
	}
}

// QueryFilter defines filters for listing leads.
type QueryFilter struct {
	Source models.LeadSource
	Status models.LeadStatus
	Limit  int64
	Offset int64
}

// Store manages lead records.
type Store struct {
	c *mongo.Collection
}

// New creates a new lead Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(LeadsCollection)}
}

// EnsureIndexes creates indexes for efficient querying.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("idx_leads_submitted"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("idx_leads_status"),
		},
		{
			Keys:    bson.D{{Key: "source", Value: 1}, {Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("idx_leads_source"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_leads_email"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Create inserts a new lead. A zero SubmittedAt is set to now and an empty
// Status defaults to new. The stored lead is returned with its assigned ID.
func (s *Store) Create(ctx context.Context, lead models.Lead) (models.Lead, error) {
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if !validStatuses[lead.Status] {
		return models.Lead{}, ErrInvalidStatus
	}
	if lead.SubmittedAt.IsZero() {
		lead.SubmittedAt = time.Now().UTC()
	}

	doc := fromModel(lead)
	doc.ID = primitive.NewObjectID()

	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return models.Lead{}, err
	}
	return doc.toModel(), nil
}

// GetByID retrieves a lead by its hex ID.
func (s *Store) GetByID(ctx context.Context, id string) (models.Lead, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Lead{}, ErrNotFound
	}

	var doc leadDoc
	err = s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Lead{}, ErrNotFound
	}
	if err != nil {
		return models.Lead{}, err
	}
	return doc.toModel(), nil
}

// List retrieves leads matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter QueryFilter) ([]models.Lead, error) {
	query := bson.M{}
	if filter.Source != "" {
		query["source"] = string(filter.Source)
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(filter.Offset)

	cursor, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []leadDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	leads := make([]models.Lead, 0, len(docs))
	for _, doc := range docs {
		leads = append(leads, doc.toModel())
	}
	return leads, nil
}

// UpdateStatus moves a lead to a new pipeline status, optionally recording
// a note alongside.
func (s *Store) UpdateStatus(ctx context.Context, id string, status models.LeadStatus, notes string) error {
	if !validStatuses[status] {
		return ErrInvalidStatus
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"status": string(status)}
	if notes != "" {
		update["notes"] = notes
	}

	res, err := s.c.UpdateByID(ctx, oid, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns how many leads are in the given status.
func (s *Store) CountByStatus(ctx context.Context, status models.LeadStatus) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": string(status)})
}
