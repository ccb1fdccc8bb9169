package domain

// Coordinate is a WGS84 point. Latitude is in [-90, 90], longitude in [-180, 180].
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PriceRange is a min/max money window. Either bound may be absent; a nil
// pointer means the upstream did not report the value, which is distinct
// from an explicit zero.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Empty reports whether neither bound is set.
func (r PriceRange) Empty() bool {
	return r.Min == nil && r.Max == nil
}

// Pricing groups the price information of a restaurant. Average is the
// upstream-reported average spend; Lunch and Dinner are independent ranges
// and each may be entirely absent.
type Pricing struct {
	Average *float64   `json:"average,omitempty"`
	Lunch   PriceRange `json:"lunch"`
	Dinner  PriceRange `json:"dinner"`
}

// RestaurantRecord is the unified restaurant representation, independent of
// which upstream response shape it was normalized from.
//
// Slug is never empty: it is the join key for availability lookups and the
// path segment of the reservation URL. Records where the upstream provides
// neither a slug nor an identifier are dropped during normalization rather
// than emitted with an empty key.
type RestaurantRecord struct {
	// ID is the upstream identifier. May equal Slug when the upstream
	// omits a separate id.
	ID string `json:"id"`

	// Name is the display name in the requested locale.
	Name string `json:"name"`

	// Slug is the canonical URL-path identifier of the restaurant.
	Slug string `json:"slug"`

	// Cuisines holds canonical cuisine ids, e.g. "sushi", "indian-curry".
	Cuisines []string `json:"cuisines,omitempty"`

	// Geo is nil when the upstream omits the coordinate. A missing
	// coordinate is never represented as (0, 0).
	Geo *Coordinate `json:"geo,omitempty"`

	// Currency is the ISO 4217 code the price fields are denominated in.
	Currency string `json:"currency,omitempty"`

	Pricing Pricing `json:"pricing"`

	// AvailableDates lists ISO dates the upstream reported as bookable.
	// Empty when unknown.
	AvailableDates []string `json:"available_dates,omitempty"`

	// ImageURL is an optional preview image.
	ImageURL string `json:"image_url,omitempty"`

	// ReservationURL is the canonical booking link for this restaurant,
	// prefilled from the originating search.
	ReservationURL string `json:"reservation_url"`
}

// AvailabilitySlot is one bookable (or not) time on a date. NumPeople is
// echoed from the request: the upstream calendar is keyed only by
// date and time and carries no per-slot party size.
type AvailabilitySlot struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
	NumPeople int    `json:"num_people"`
}

// CuisineRecord pairs a locale-invariant canonical id with a display name
// resolved for the requested locale.
type CuisineRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
