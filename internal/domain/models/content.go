// internal/domain/models/content.go
package models

import "time"

// The content entities below are authored in the external CMS and read-only
// from this application's point of view. The store layer decodes raw CMS
// documents (legacy category values, multi-shape icons) into these
// canonical shapes; nothing above the store sees a legacy value.

// DestinationType classifies a destination as domestic or international.
type DestinationType string

const (
	DestinationDomestic      DestinationType = "domestic"
	DestinationInternational DestinationType = "international"
)

// DestinationRef is the denormalized slice of a destination inlined into
// package query results, so listing pages need no second lookup.
type DestinationRef struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Image    string          `json:"image,omitempty"`
	Location string          `json:"location,omitempty"`
	Type     DestinationType `json:"type,omitempty"`
}

// ItineraryDay is one entry of a package itinerary.
type ItineraryDay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Package is a bookable trip.
//
// Price is "starting from" and currency-agnostic; nil means price on
// request. Duration is free text ("5 Days / 4 Nights"), not a structured
// interval. Education-trip packages (Category.IsEducation) use the
// free-text Locations list instead of a Destination reference.
type Package struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Image        string          `json:"image,omitempty"`
	Price        *int            `json:"price,omitempty"`
	Duration     string          `json:"duration,omitempty"`
	Description  string          `json:"description,omitempty"`
	Highlights   []string        `json:"highlights,omitempty"`
	Itinerary    []ItineraryDay  `json:"itinerary,omitempty"`
	Locations    []string        `json:"locations,omitempty"`
	Category     Category        `json:"category"`
	Type         TripType        `json:"type,omitempty"`
	IsFeatured   bool            `json:"isFeatured"`
	DisplayOrder int             `json:"displayOrder"`
	Destination  *DestinationRef `json:"destination,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// PackageRef is the slice of a package inlined into a destination detail.
type PackageRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Image    string `json:"image,omitempty"`
	Price    *int   `json:"price,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Destination is a place that can host packages. FeaturedPackages is
// computed by querying packages that reference the destination; it is only
// populated on the detail query.
type Destination struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Image            string          `json:"image,omitempty"`
	Description      string          `json:"description,omitempty"`
	Location         string          `json:"location,omitempty"`
	Type             DestinationType `json:"type,omitempty"`
	IsPopular        bool            `json:"isPopular"`
	DisplayOrder     int             `json:"displayOrder"`
	FeaturedPackages []PackageRef    `json:"featuredPackages,omitempty"`
}

// Service is a business offering independent of packages and destinations.
type Service struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"shortDescription"`
	FullDescription  string `json:"fullDescription,omitempty"`
	Icon             Icon   `json:"-"`
	ColorGradient    string `json:"colorGradient,omitempty"`
	Category         string `json:"category,omitempty"`
	DisplayOrder     int    `json:"displayOrder"`
	Static           bool   `json:"-"` // true for the hard-coded entries outside the CMS
}

// GalleryCategory groups gallery images for the tabbed gallery page.
type GalleryCategory string

const (
	GalleryHappyCustomers     GalleryCategory = "happyCustomers"
	GallerySchoolCollegeTrips GalleryCategory = "schoolCollegeTrips"
)

// GalleryImage is a pure display entity with no relationships.
type GalleryImage struct {
	ID           string          `json:"id"`
	Image        string          `json:"image"`
	Title        string          `json:"title"`
	Alt          string          `json:"alt,omitempty"`
	Category     GalleryCategory `json:"category"`
	DisplayOrder int             `json:"displayOrder"`
}

// DefaultSiteName is shown in the header when no site settings exist.
const DefaultSiteName = "Payaana Holidays"

// DefaultTagline is the default hero tagline.
const DefaultTagline = "Your one-stop travel solution"
