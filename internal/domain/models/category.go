// internal/domain/models/category.go
package models

// Category is the canonical package category. The CMS has accumulated
// several generations of category values; legacy flat values such as
// "school-study-tours" are folded into the canonical pair of
// Category + TripType at the store boundary, so code above the store
// only ever sees these six values.
type Category string

const (
	CategorySpecialised      Category = "specialised"
	CategoryInternational    Category = "international"
	CategoryDomestic         Category = "domestic"
	CategoryFixedDeparture   Category = "fixedDeparture"
	CategorySchoolProgrammes Category = "school-programmes"
	CategoryCollegeOutbounds Category = "college-outbounds"
)

// TripType sub-classifies education-trip packages. It is only meaningful
// for CategorySchoolProgrammes and CategoryCollegeOutbounds; for every
// other category it is empty.
type TripType string

const (
	TripTypeStudyTours       TripType = "study-tours"
	TripTypeOutboundCamps    TripType = "outbound-camps"
	TripTypeIndustrialVisits TripType = "industrial-visits"
)

// legacyCategories maps retired flat category values (still present on
// older CMS documents) onto the canonical Category + TripType pair.
var legacyCategories = map[string]struct {
	Category Category
	Type     TripType
}{
	"school-study-tours":        {CategorySchoolProgrammes, TripTypeStudyTours},
	"school-outbound-camps":     {CategorySchoolProgrammes, TripTypeOutboundCamps},
	"college-study-tours":       {CategoryCollegeOutbounds, TripTypeStudyTours},
	"college-industrial-visits": {CategoryCollegeOutbounds, TripTypeIndustrialVisits},
	"college-outbound-camps":    {CategoryCollegeOutbounds, TripTypeOutboundCamps},
}

// NormalizeCategory maps a raw stored category value (canonical or legacy)
// plus a raw stored type onto the canonical pair. An unrecognized raw
// category is passed through unchanged so new CMS values degrade gracefully
// rather than disappearing.
func NormalizeCategory(rawCategory, rawType string) (Category, TripType) {
	if legacy, ok := legacyCategories[rawCategory]; ok {
		// Legacy values encode the type in the category itself; a stored
		// type field, if any, loses to the encoded one.
		return legacy.Category, legacy.Type
	}
	c := Category(rawCategory)
	if c != CategorySchoolProgrammes && c != CategoryCollegeOutbounds {
		// Type is only meaningful for the two education categories.
		return c, ""
	}
	return c, TripType(rawType)
}

// IsEducation reports whether the category is one of the two education-trip
// categories, which use free-text locations instead of a destination
// reference and may carry a TripType.
func (c Category) IsEducation() bool {
	return c == CategorySchoolProgrammes || c == CategoryCollegeOutbounds
}

// CategoryLabel returns the display label for a canonical category.
func CategoryLabel(c Category) string {
	switch c {
	case CategorySpecialised:
		return "Specialised Destination"
	case CategoryInternational:
		return "International Holiday Packages"
	case CategoryDomestic:
		return "Domestic Holiday Packages"
	case CategoryFixedDeparture:
		return "Fixed Departures"
	case CategorySchoolProgrammes:
		return "School Programmes"
	case CategoryCollegeOutbounds:
		return "College Outbounds"
	}
	return string(c)
}
