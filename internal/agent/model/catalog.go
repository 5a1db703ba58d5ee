package model

// CatalogKind selects which catalog table a search runs against.
type CatalogKind string

const (
	KindTransport CatalogKind = "transport"
	KindLodging   CatalogKind = "lodging"
	KindGuide     CatalogKind = "guide"
	KindActivity  CatalogKind = "activity"
)

// Record is a read-only catalog item. Kind decides which display fields are populated.
type Record struct {
	ID       int64       `json:"id"`
	Kind     CatalogKind `json:"kind"`
	Name     string      `json:"name"`
	Category string      `json:"category,omitempty"`
	Location string      `json:"location,omitempty"`

	// transport
	TransportType string `json:"transport_type,omitempty"`
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	Departure     string `json:"departure,omitempty"`
	Arrival       string `json:"arrival,omitempty"`
	ClassType     string `json:"class,omitempty"`

	// guide / activity / lodging
	Specialties     []string `json:"specialties,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Amenities       []string `json:"amenities,omitempty"`
	Highlights      []string `json:"highlights,omitempty"`
	GroupSize       string   `json:"group_size,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	Description     string   `json:"description,omitempty"`
	Availability    string   `json:"availability_status,omitempty"`
	TotalReviews    int      `json:"total_reviews,omitempty"`

	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}

// TopRecords returns at most n leading records.
func TopRecords(records []Record, n int) []Record {
	if n < 0 || len(records) <= n {
		return records
	}
	return records[:n]
}
