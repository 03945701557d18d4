// internal/app/features/services/seed.go
package services

import "github.com/payaana/website/internal/domain/models"

// seedServices are the original hand-maintained service entries from before
// the CMS held services. They serve as the fallback catalogue when the CMS
// returns nothing, and individual entries stay resolvable by slug so old
// links keep working.
var seedServices = []models.Service{
	{
		ID:               "air-ticketing",
		Title:            "Air Ticketing",
		Slug:             "air-ticketing",
		ShortDescription: "Reliable airline ticketing services with tie-ups to renowned domestic and international airlines at cost-effective rates.",
		FullDescription:  "We offer Air ticket reservations all around the world and our airline ticketing services are highly reliable. Our organisation has tie-ups with renowned domestic as well as international airlines, enabling us to arrange tickets within the postulated time period and at cost effective rates.",
		Icon:             models.DecodeIcon("", "/static/air-ticketing.webp"),
		ColorGradient:    "from-blue-400 to-indigo-500",
		Category:         "Booking",
		Static:           true,
	},
	{
		ID:               "visa-assistance",
		Title:            "Visa Assistance",
		Slug:             "visa-assistance",
		ShortDescription: "Complete guidance and assistance for all visa processes including Business, Leisure, Family Visit, Dependent, Study, and Work visas.",
		FullDescription:  "Payaana has a team of friendly and experienced Individuals who are trained to understand your requirements and provide you with complete knowledge and assistance regarding your visa processes. The team is well equipped to guide you through the entire procedure from documentation, policies to stamping of all kind of visas like Business, Leisure, Family Visit, Dependent, Study or Work. Name your Requirement, and our experts will do the needful.",
		Icon:             models.DecodeIcon("", "/static/visa-assistance.webp"),
		ColorGradient:    "from-green-400 to-teal-500",
		Category:         "Documentation",
		Static:           true,
	},
	{
		ID:               "passport-assistance",
		Title:            "Passport Assistance",
		Slug:             "passport-assistance",
		ShortDescription: "Complete assistance for fresh passport issuance, renewal procedures, PCC, Diplomatic Passports, and Background Verification certificates.",
		FullDescription:  "Payaana will assist its clients in getting their Passports issued. We provide Services in Getting your Fresh Passports and also the Renewal Procedures. other PAssport office Services Like Issuance of PCC, Issuance of Diplomatic Passports and Issuance of Background Verification certificates For GEP also is Undertaken and Assisted by Payaana Team.",
		Icon:             models.DecodeIcon("", "/static/passport-assistance.webp"),
		ColorGradient:    "from-orange-400 to-red-500",
		Category:         "Documentation",
		Static:           true,
	},
	{
		ID:               "travel-insurance",
		Title:            "Travel Insurance",
		Slug:             "travel-insurance",
		ShortDescription: "Essential travel insurance guidance with tie-ups to major insurance companies, covering all types of travel with claim assistance.",
		FullDescription:  "Travel Insurance is a very Important and recomended document for every traveller to carry on their journey. Payaana has tie ups with major insurance companies and provides guidance with all the required informations about the Insurance, assistance in getting the right Insurance for the type of travel and through its coverage and claim procedures. Payaana helps with registration of claims and encashment in cases where its required.",
		Icon:             models.DecodeIcon("", "/static/travel-insurance.webp"),
		ColorGradient:    "from-blue-500 to-cyan-500",
		Category:         "Protection",
		Static:           true,
	},
	{
		ID:               "holiday-planning-tour-packages",
		Title:            "Holiday Planning & Tour Packages",
		Slug:             "holiday-planning-tour-packages",
		ShortDescription: "Expert tour package planning with customized solutions for Leisure, Family Tours, Youth Tours, Honeymoon, Adventure, Pilgrimage, and more.",
		FullDescription:  "Payaana is expert in providing the right tour package based on customer requirements. We first understand the needs of each traveler's query and provide them with best suited customised packages. We have wide range of of bookings like, Leisure, Family Tour, Youth Tour, Honeymoon, Adventure, Pilgrimage and many more.",
		Icon:             models.DecodeIcon("", "/static/holiday-planning.webp"),
		ColorGradient:    "from-teal-400 to-green-500",
		Category:         "Planning",
		Static:           true,
	},
	{
		ID:               "currency-exchange",
		Title:            "Currency Exchange",
		Slug:             "currency-exchange",
		ShortDescription: "Foreign currency exchange at competitive rates with guidance on type, quantity, and mode of currency for your travels.",
		FullDescription:  "Payaana helps its clients get their foriegn currency exchange done at a very good rate based on the availability. we also guide you with type ,quantity and mode of currency you should and can carry while you go on a tour.",
		Icon:             models.DecodeIcon("", "/static/currency-exchange.webp"),
		ColorGradient:    "from-yellow-400 to-orange-500",
		Category:         "Financial",
		Static:           true,
	},
	{
		ID:               "international-sim",
		Title:            "International SIM",
		Slug:             "international-sim",
		ShortDescription: "Matrix International SIM Card recommendations for all international travels with local call rates to stay connected abroad.",
		FullDescription:  "Payaana recommends to carry a Matrix International SIM Card for all international travels. Enjoy local call rates for the country you are travelling to and stay connected with everyone when traveling abroad for business or leisure.",
		Icon:             models.DecodeIcon("", "/static/international-sim.webp"),
		ColorGradient:    "from-purple-400 to-pink-500",
		Category:         "Connectivity",
		Static:           true,
	},
	{
		ID:               "cruise-booking",
		Title:            "Cruise Booking",
		Slug:             "cruise-booking",
		ShortDescription: "Expert cruise booking services with tie-ups to major cruise companies and DMCs at competitive prices with early bird offers.",
		FullDescription:  "Payaana's team has experts to help you get your cruise booking done. Payaana is tied up with major cruise companies and its DMCs and can provide bookings done at a very competative price. We also assist with its advance booking policies and early bird offers which can be booked and saved.",
		Icon:             models.DecodeIcon("", "/static/cruise-booking.webp"),
		ColorGradient:    "from-cyan-400 to-blue-500",
		Category:         "Booking",
		Static:           true,
	},
	{
		ID:               "accommodation",
		Title:            "Accommodation",
		Slug:             "accommodation",
		ShortDescription: "Best accommodations worldwide with tie-ups to premium properties including Hotels, Resorts, and Service Apartments in all star categories.",
		FullDescription:  "Payaana takes you through the best of accommodations worldwide. We have tie ups with best properties across the globe for reservations in Hotels, Resorts, Service Apartments in all star categories. Get the right accomodation that meets your needs based on your travel interests like Business, Leisure, Honeymoon and more through Payaana.",
		Icon:             models.DecodeIcon("", "/static/accomodation.webp"),
		ColorGradient:    "from-rose-400 to-pink-500",
		Category:         "Booking",
		Static:           true,
	},
}

// SchoolTripsSlug is the slug of the education-trips entry. It never lives
// in the CMS and gets a dedicated page showing the education packages.
const SchoolTripsSlug = "school-college-trips"

// schoolTripsService is the education-trips listing entry appended after
// the CMS services.
var schoolTripsService = models.Service{
	ID:               SchoolTripsSlug,
	Title:            "School/College Trips and Camps",
	Slug:             SchoolTripsSlug,
	ShortDescription: "Educational and adventure trips for schools and colleges",
	Icon:             models.DecodeIcon("", "/static/school-college-trips.webp"),
	ColorGradient:    "from-purple-400 to-pink-500",
	Static:           true,
}

// staticBySlug resolves a seed service by slug, nil when unknown.
func staticBySlug(slug string) *models.Service {
	for i := range seedServices {
		if seedServices[i].Slug == slug {
			return &seedServices[i]
		}
	}
	return nil
}
