package packagefilter

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/payaana/website/internal/domain/models"
)

func intPtr(n int) *int { return &n }

func pkg(title string, price *int, duration string) models.Package {
	return models.Package{Title: title, Price: price, Duration: duration}
}

func titles(packages []models.Package) []string {
	out := make([]string, 0, len(packages))
	for _, p := range packages {
		out = append(out, p.Title)
	}
	return out
}

func TestFromQuery(t *testing.T) {
	values, _ := url.ParseQuery("search=kerala&priceRange=0-10000&duration=4-7&destination=goa")
	got := FromQuery(values)
	want := Params{Search: "kerala", Destination: "goa", PriceRange: "0-10000", Duration: "4-7"}
	if got != want {
		t.Errorf("FromQuery() = %+v, want %+v", got, want)
	}

	if !FromQuery(url.Values{}).IsZero() {
		t.Error("FromQuery(empty).IsZero() = false, want true")
	}
}

func TestApply_Search(t *testing.T) {
	packages := []models.Package{
		{Title: "Magical Manali"},
		{Title: "Goa Getaway", Description: "Beaches and manali-style cafes"},
		{Title: "Kerala", Destination: &models.DestinationRef{Name: "Manali"}},
		{Title: "Rajasthan Royal"},
	}

	got := Apply(packages, Params{Search: "MANALI"})
	want := []string{"Magical Manali", "Goa Getaway", "Kerala"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Apply(search) = %v, want %v", titles(got), want)
	}
}

func TestApply_PriceBrackets(t *testing.T) {
	packages := []models.Package{
		pkg("budget", intPtr(10000), ""),
		pkg("mid", intPtr(10001), ""),
		pkg("upper", intPtr(50000), ""),
		pkg("luxury", intPtr(50001), ""),
		pkg("no price", nil, ""),
		pkg("zero price", intPtr(0), ""),
	}

	tests := []struct {
		bracket string
		want    []string
	}{
		{PriceUnder10K, []string{"budget"}},
		{Price10To25K, []string{"mid"}},
		{Price25To50K, []string{"upper"}},
		{PriceOver50K, []string{"luxury"}},
	}

	for _, tt := range tests {
		got := Apply(packages, Params{PriceRange: tt.bracket})
		if !reflect.DeepEqual(titles(got), tt.want) {
			t.Errorf("Apply(priceRange=%s) = %v, want %v", tt.bracket, titles(got), tt.want)
		}
	}

	// Every priced package lands in exactly one bracket
	counts := make(map[string]int)
	for _, tt := range tests {
		for _, title := range titles(Apply(packages, Params{PriceRange: tt.bracket})) {
			counts[title]++
		}
	}
	for _, title := range []string{"budget", "mid", "upper", "luxury"} {
		if counts[title] != 1 {
			t.Errorf("package %q matched %d brackets, want 1", title, counts[title])
		}
	}

	// Unknown bracket keeps priced packages, still drops unpriced ones
	got := Apply(packages, Params{PriceRange: "weird"})
	if !reflect.DeepEqual(titles(got), []string{"budget", "mid", "upper", "luxury"}) {
		t.Errorf("Apply(priceRange=weird) = %v, want all priced packages", titles(got))
	}
}

func TestApply_DurationBrackets(t *testing.T) {
	packages := []models.Package{
		pkg("weekend", nil, "3 Days / 2 Nights"),
		pkg("week", nil, "7-day adventure"),
		pkg("fortnight", nil, "14 Days"),
		pkg("expedition", nil, "21 Days"),
		pkg("no duration", nil, ""),
		pkg("wordy", nil, "Two weeks"),
	}

	tests := []struct {
		bracket string
		want    []string
	}{
		{Duration1To3, []string{"weekend"}},
		{Duration4To7, []string{"week"}},
		{Duration8To14, []string{"fortnight"}},
		{Duration15Up, []string{"expedition"}},
	}

	for _, tt := range tests {
		got := Apply(packages, Params{Duration: tt.bracket})
		if !reflect.DeepEqual(titles(got), tt.want) {
			t.Errorf("Apply(duration=%s) = %v, want %v", tt.bracket, titles(got), tt.want)
		}
	}
}

func TestApply_CombinedFilters(t *testing.T) {
	packages := []models.Package{
		pkg("Kerala Backwaters", intPtr(18500), "5 Days / 4 Nights"),
		pkg("Kerala Express", intPtr(8000), "2 Days"),
		pkg("Goa Beaches", intPtr(15000), "5 Days"),
	}

	got := Apply(packages, Params{Search: "kerala", PriceRange: Price10To25K, Duration: Duration4To7})
	if !reflect.DeepEqual(titles(got), []string{"Kerala Backwaters"}) {
		t.Errorf("Apply(combined) = %v, want only Kerala Backwaters", titles(got))
	}
}

func TestApply_PureAndIdempotent(t *testing.T) {
	packages := []models.Package{
		pkg("a", intPtr(5000), "2 Days"),
		pkg("b", intPtr(30000), "10 Days"),
	}
	params := Params{PriceRange: PriceUnder10K}

	before := make([]models.Package, len(packages))
	copy(before, packages)

	once := Apply(packages, params)
	twice := Apply(once, params)

	if !reflect.DeepEqual(packages, before) {
		t.Error("Apply() mutated its input")
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Apply() not idempotent: %v vs %v", titles(once), titles(twice))
	}
}

func TestApply_NoFilters(t *testing.T) {
	packages := []models.Package{pkg("a", nil, ""), pkg("b", nil, "")}
	got := Apply(packages, Params{})
	if !reflect.DeepEqual(titles(got), []string{"a", "b"}) {
		t.Errorf("Apply(no filters) = %v, want all packages in order", titles(got))
	}
}
