// Package catalog holds the static service catalog and network locations
// shown on the marketing pages. The tables are built once at init and are
// read-only afterwards.
package catalog

// Service describes one offering on the services pages.
type Service struct {
	Slug   string
	Title  string
	Short  string
	Long   string
	Images []string
}

// Location is one point in the logistics network.
type Location struct {
	City string
	Type string
}

var services = []Service{
	{
		Slug:  "ftl",
		Title: "Full Truck Load (FTL)",
		Short: "Dedicated trucks for single-consignment moves across India.",
		Long: "Dedicated vehicle placement for full truck load movements, from 1 MT pickups " +
			"to 32 ft multi-axle trailers. Door-to-door transit with a single point of " +
			"contact from loading to proof of delivery.",
		Images: []string{"/static/img/services/ftl-1.jpg", "/static/img/services/ftl-2.jpg"},
	},
	{
		Slug:  "ptl",
		Title: "Part Truck Load (PTL)",
		Short: "Shared capacity for smaller consignments on scheduled lanes.",
		Long: "Consolidated part load services on scheduled lanes between our hubs. Pay for " +
			"the space you use while keeping predictable transit times and hub-level tracking.",
		Images: []string{"/static/img/services/ptl-1.jpg"},
	},
	{
		Slug:  "odc",
		Title: "Over Dimensional Cargo (ODC)",
		Short: "Project cargo and over-dimensional movements with route surveys.",
		Long: "Hydraulic axles, low-bed trailers and escorted movements for over dimensional " +
			"and over weight cargo. Route surveys, permissions and lashing plans handled " +
			"end to end by our projects team.",
		Images: []string{"/static/img/services/odc-1.jpg", "/static/img/services/odc-2.jpg"},
	},
	{
		Slug:  "warehousing",
		Title: "Warehousing",
		Short: "Short and long term storage at our hub locations.",
		Long: "Covered storage, handling and dispatch services at our Bengaluru and Chennai " +
			"warehouses, including inventory reporting and last-mile coordination.",
		Images: []string{"/static/img/services/warehouse-1.jpg"},
	},
	{
		Slug:  "value-added",
		Title: "Value Added Services",
		Short: "Packaging, insurance coordination and POD management.",
		Long: "Supporting services around the line haul: industrial packaging, transit " +
			"insurance coordination, consignment tracking reports and digital proof of " +
			"delivery management.",
		Images: []string{"/static/img/services/vas-1.jpg"},
	},
}

var servicesBySlug = func() map[string]Service {
	m := make(map[string]Service, len(services))
	for _, s := range services {
		m[s.Slug] = s
	}
	return m
}()

var locations = []Location{
	{City: "Delhi", Type: "Hub"},
	{City: "Mumbai", Type: "Hub"},
	{City: "Bengaluru", Type: "Warehouse"},
	{City: "Chennai", Type: "Warehouse"},
}

// All returns every service in display order.
func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// Lookup returns the service for a slug. The second return is false for
// unknown slugs.
func Lookup(slug string) (Service, bool) {
	s, ok := servicesBySlug[slug]
	return s, ok
}

// Locations returns the network locations in display order.
func Locations() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}
