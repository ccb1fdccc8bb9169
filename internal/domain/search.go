package domain

// Locale identifies the language of display names and of the reservation
// page. Only English and Japanese are supported upstream.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJP Locale = "jp"

	// DefaultLocale is applied when a request carries no locale.
	DefaultLocale = LocaleEN
)

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	return l == LocaleEN || l == LocaleJP
}

// SortBy is the upstream sort key.
type SortBy string

const (
	SortByDistance SortBy = "distance"
	SortByPrice    SortBy = "price"
)

// SortOrder is the upstream sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DefaultGeoDistanceKM is the search radius applied at the orchestration
// boundary when a request carries a geographic anchor but no radius.
const DefaultGeoDistanceKM = 5.0

// SearchRequest captures the caller's search intent. All fields except
// Locale are optional; pointer fields distinguish "unset" from a zero
// value, which matters because the upstream treats the two differently.
type SearchRequest struct {
	// Query is free text. When present the orchestrator runs the
	// combined text + filtered search path.
	Query string

	// Geo anchors the search geographically. Nil means no anchor.
	Geo *Coordinate

	// GeoDistanceKM is the search radius around Geo, in kilometres.
	GeoDistanceKM *float64

	// Cuisines holds canonical cuisine ids to filter by.
	Cuisines []string

	// DateMin and DateMax bound the desired visit window, ISO dates.
	DateMin string
	DateMax string

	// NumPeople is the party size, 1-20.
	NumPeople *int

	// Time is the desired seating time, "HH:MM". Its presence also
	// forces the upstream same-meal-time availability mode.
	Time string

	// BudgetMin and BudgetMax bound the per-head dinner budget.
	BudgetMin *float64
	BudgetMax *float64

	SortBy    SortBy
	SortOrder SortOrder

	Locale Locale
}

// AvailabilityRequest asks for the availability calendar of one shop.
// All fields are mandatory and validated before translation.
type AvailabilityRequest struct {
	ShopID    string
	StartAt   string // ISO 8601 timestamp
	NumPeople int
	Locale    Locale
}
