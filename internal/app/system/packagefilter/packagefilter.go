// Package packagefilter narrows a package list by the query parameters of
// the packages listing page. Filtering is pure: Apply never mutates its
// input and applying the same params twice gives the same result.
package packagefilter

import (
	"net/url"
	"strings"

	"github.com/payaana/website/internal/domain/models"
)

// Price bracket values accepted in the priceRange query parameter.
const (
	PriceUnder10K = "0-10000"
	Price10To25K  = "10000-25000"
	Price25To50K  = "25000-50000"
	PriceOver50K  = "50000+"
)

// Duration bracket values accepted in the duration query parameter.
const (
	Duration1To3  = "1-3"
	Duration4To7  = "4-7"
	Duration8To14 = "8-14"
	Duration15Up  = "15+"
)

// Params holds the active filters from the listing page query string.
// Empty fields mean the filter is inactive.
type Params struct {
	Search      string // substring of title, description, or destination name
	Destination string // substring of destination name
	PriceRange  string // one of the price bracket values
	Duration    string // one of the duration bracket values
}

// FromQuery extracts filter params from a request query string.
func FromQuery(values url.Values) Params {
	return Params{
		Search:      values.Get("search"),
		Destination: values.Get("destination"),
		PriceRange:  values.Get("priceRange"),
		Duration:    values.Get("duration"),
	}
}

// IsZero reports whether no filter is active.
func (p Params) IsZero() bool {
	return p.Search == "" && p.Destination == "" && p.PriceRange == "" && p.Duration == ""
}

// Apply returns the packages that pass every active filter, preserving
// the input order.
func Apply(packages []models.Package, p Params) []models.Package {
	filtered := make([]models.Package, 0, len(packages))
	for _, pkg := range packages {
		if p.Search != "" && !matchesSearch(pkg, p.Search) {
			continue
		}
		if p.Destination != "" && !matchesDestination(pkg, p.Destination) {
			continue
		}
		if p.PriceRange != "" && !matchesPrice(pkg, p.PriceRange) {
			continue
		}
		if p.Duration != "" && !matchesDuration(pkg, p.Duration) {
			continue
		}
		filtered = append(filtered, pkg)
	}
	return filtered
}

func matchesSearch(pkg models.Package, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(pkg.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(pkg.Description), term) {
		return true
	}
	return pkg.Destination != nil &&
		strings.Contains(strings.ToLower(pkg.Destination.Name), term)
}

func matchesDestination(pkg models.Package, term string) bool {
	return pkg.Destination != nil &&
		strings.Contains(strings.ToLower(pkg.Destination.Name), strings.ToLower(term))
}

// matchesPrice applies a price bracket. A package without a usable price
// fails every bracket; an unrecognized bracket value filters nothing out.
func matchesPrice(pkg models.Package, bracket string) bool {
	if pkg.Price == nil || *pkg.Price == 0 {
		return false
	}
	price := *pkg.Price
	switch bracket {
	case PriceUnder10K:
		return price <= 10000
	case Price10To25K:
		return price > 10000 && price <= 25000
	case Price25To50K:
		return price > 25000 && price <= 50000
	case PriceOver50K:
		return price > 50000
	default:
		return true
	}
}

// matchesDuration applies a duration bracket using the leading integer of
// the duration string ("5 Days / 4 Nights" counts as 5). Packages with no
// duration, or one that doesn't start with a number, fail every bracket;
// an unrecognized bracket value filters nothing out.
func matchesDuration(pkg models.Package, bracket string) bool {
	if pkg.Duration == "" {
		return false
	}
	days, ok := leadingInt(pkg.Duration)
	switch bracket {
	case Duration1To3:
		return ok && days >= 1 && days <= 3
	case Duration4To7:
		return ok && days >= 4 && days <= 7
	case Duration8To14:
		return ok && days >= 8 && days <= 14
	case Duration15Up:
		return ok && days >= 15
	default:
		return true
	}
}

// leadingInt parses the digits at the start of the first space-separated
// token, so "7-day trek" yields 7.
func leadingInt(s string) (int, bool) {
	token := s
	if i := strings.IndexByte(s, ' '); i >= 0 {
		token = s[:i]
	}

	n := 0
	digits := 0
	for _, c := range token {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		digits++
	}
	return n, digits > 0
}
