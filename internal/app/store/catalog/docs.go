// internal/app/store/catalog/docs.go
package catalog

import (
	"time"

	"github.com/payaana/website/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The raw document shapes below mirror what the CMS actually stores,
// including legacy category values and the multi-shape icon field.
// Mapping to the canonical models happens here, on the way out of the
// store, so nothing above it sees a legacy value.

type itineraryDoc struct {
	Title       string `bson:"title"`
	Description string `bson:"description"`
}

type packageDoc struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Title         string              `bson:"title"`
	Slug          string              `bson:"slug"`
	MainImage     string              `bson:"main_image,omitempty"`
	Price         *int                `bson:"price,omitempty"`
	Duration      string              `bson:"duration,omitempty"`
	Description   string              `bson:"description,omitempty"`
	Highlights    []string            `bson:"highlights,omitempty"`
	Itinerary     []itineraryDoc      `bson:"itinerary,omitempty"`
	Locations     []string            `bson:"locations,omitempty"`
	Category      string              `bson:"category"`
	Type          string              `bson:"type,omitempty"`
	IsFeatured    bool                `bson:"is_featured"`
	DisplayOrder  int                 `bson:"display_order"`
	DestinationID *primitive.ObjectID `bson:"destination_id,omitempty"`
	CreatedAt     time.Time           `bson:"created_at"`
}

type destinationDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Slug         string             `bson:"slug"`
	MainImage    string             `bson:"main_image,omitempty"`
	Description  string             `bson:"description,omitempty"`
	Location     string             `bson:"location,omitempty"`
	Type         string             `bson:"type,omitempty"`
	IsPopular    bool               `bson:"is_popular"`
	DisplayOrder int                `bson:"display_order"`
}

type serviceDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Slug             string             `bson:"slug"`
	ShortDescription string             `bson:"short_description"`
	FullDescription  string             `bson:"full_description,omitempty"`
	Icon             string             `bson:"icon,omitempty"`       // emoji or path, older documents
	IconAsset        string             `bson:"icon_asset,omitempty"` // image asset reference, newer documents
	ColorGradient    string             `bson:"color_gradient,omitempty"`
	Category         string             `bson:"category,omitempty"`
	DisplayOrder     int                `bson:"display_order"`
}

type galleryDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Image        string             `bson:"image"`
	Title        string             `bson:"title"`
	Alt          string             `bson:"alt,omitempty"`
	Category     string             `bson:"category"`
	DisplayOrder int                `bson:"display_order"`
}

func (d packageDoc) toModel(dest *models.DestinationRef) models.Package {
	category, tripType := models.NormalizeCategory(d.Category, d.Type)
	p := models.Package{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Slug:         d.Slug,
		Image:        d.MainImage,
		Price:        d.Price,
		Duration:     d.Duration,
		Description:  d.Description,
		Highlights:   d.Highlights,
		Locations:    d.Locations,
		Category:     category,
		Type:         tripType,
		IsFeatured:   d.IsFeatured,
		DisplayOrder: d.DisplayOrder,
		Destination:  dest,
		CreatedAt:    d.CreatedAt,
	}
	for _, day := range d.Itinerary {
		p.Itinerary = append(p.Itinerary, models.ItineraryDay{
			Title:       day.Title,
			Description: day.Description,
		})
	}
	return p
}

func (d packageDoc) toRef() models.PackageRef {
	return models.PackageRef{
		ID:       d.ID.Hex(),
		Title:    d.Title,
		Slug:     d.Slug,
		Image:    d.MainImage,
		Price:    d.Price,
		Duration: d.Duration,
	}
}

func (d destinationDoc) toModel() models.Destination {
	return models.Destination{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Slug:         d.Slug,
		Image:        d.MainImage,
		Description:  d.Description,
		Location:     d.Location,
		Type:         models.DestinationType(d.Type),
		IsPopular:    d.IsPopular,
		DisplayOrder: d.DisplayOrder,
	}
}

func (d destinationDoc) toRef(full bool) *models.DestinationRef {
	ref := &models.DestinationRef{
		ID:   d.ID.Hex(),
		Name: d.Name,
		Slug: d.Slug,
	}
	if full {
		ref.Image = d.MainImage
		ref.Location = d.Location
		ref.Type = models.DestinationType(d.Type)
	}
	return ref
}

func (d serviceDoc) toModel() models.Service {
	return models.Service{
		ID:               d.ID.Hex(),
		Title:            d.Title,
		Slug:             d.Slug,
		ShortDescription: d.ShortDescription,
		FullDescription:  d.FullDescription,
		Icon:             models.DecodeIcon(d.IconAsset, d.Icon),
		ColorGradient:    d.ColorGradient,
		Category:         d.Category,
		DisplayOrder:     d.DisplayOrder,
	}
}

func (d galleryDoc) toModel() models.GalleryImage {
	return models.GalleryImage{
		ID:           d.ID.Hex(),
		Image:        d.Image,
		Title:        d.Title,
		Alt:          d.Alt,
		Category:     models.GalleryCategory(d.Category),
		DisplayOrder: d.DisplayOrder,
	}
}

// rawCategoryValues returns every stored category value (canonical plus
// legacy) that normalizes to the given canonical category, for use in
// $in filters so old documents keep appearing in category queries.
func rawCategoryValues(c models.Category) []string {
	values := []string{string(c)}
	switch c {
	case models.CategorySchoolProgrammes:
		values = append(values, "school-study-tours", "school-outbound-camps")
	case models.CategoryCollegeOutbounds:
		values = append(values, "college-study-tours", "college-industrial-visits", "college-outbound-camps")
	}
	return values
}
