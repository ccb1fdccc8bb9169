package tablecheck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// DefaultBookingBaseURL is the public booking site links point at.
const DefaultBookingBaseURL = "https://www.tablecheck.com"

// Fixed reservation-page parameters, always present.
const (
	linkAvailabilityDays   = "30"
	linkAvailabilityFormat = "date"
)

// LinkBuilder constructs the canonical reservation URL for a restaurant.
// It is pure and deterministic: the same inputs always yield a
// byte-identical URL, so repeated tool calls hand the agent a stable link.
// Unlike search queries there is no cache-busting token here.
type LinkBuilder struct {
	baseURL string
}

// NewLinkBuilder creates a LinkBuilder. An empty baseURL selects the
// public booking site.
func NewLinkBuilder(baseURL string) *LinkBuilder {
	if baseURL == "" {
		baseURL = DefaultBookingBaseURL
	}
	return &LinkBuilder{baseURL: strings.TrimRight(baseURL, "/")}
}

// Build serializes the slug plus a subset of search parameters into the
// reservation URL. Optional parameters are appended only when present, in
// a fixed declared order; url.Values is avoided on purpose since its
// Encode sorts keys and would scramble that order.
func (b *LinkBuilder) Build(slug string, req domain.SearchRequest, locale domain.Locale) string {
	if locale == "" {
		locale = domain.DefaultLocale
	}

	var sb strings.Builder
	sb.WriteString(b.baseURL)
	sb.WriteByte('/')
	sb.WriteString(string(locale))
	sb.WriteByte('/')
	sb.WriteString(slug)
	sb.WriteString("/reserve")

	params := make([]string, 0, 16)
	add := func(key, value string) {
		params = append(params, key+"="+queryEscape(value))
	}

	add("availability_days", linkAvailabilityDays)
	add("availability_format", linkAvailabilityFormat)
	add("service_mode", paramServiceMode)
	add("venue_type", paramVenueType)

	if req.NumPeople != nil {
		add("num_people", strconv.Itoa(*req.NumPeople))
	}
	if req.DateMin != "" {
		add("date_min", req.DateMin)
	}
	if req.DateMax != "" {
		add("date_max", req.DateMax)
	}
	if req.Time != "" {
		add("time", req.Time)
		add("availability_mode", "same_meal_time")
	}
	if req.BudgetMin != nil {
		add("budget_dinner_avg_min", formatFloat(*req.BudgetMin))
	}
	if req.BudgetMax != nil {
		add("budget_dinner_avg_max", formatFloat(*req.BudgetMax))
	}
	if req.Geo != nil {
		add("geo_latitude", formatFloat(req.Geo.Latitude))
		add("geo_longitude", formatFloat(req.Geo.Longitude))
	}
	if req.GeoDistanceKM != nil {
		add("geo_distance", formatFloat(*req.GeoDistanceKM)+"km")
	}
	if req.SortBy != "" {
		add("sort_by", string(req.SortBy))
	}
	if req.SortOrder != "" {
		add("sort_order", string(req.SortOrder))
	}

	sb.WriteByte('?')
	sb.WriteString(strings.Join(params, "&"))
	return sb.String()
}

// queryEscape escapes a query value but keeps ":" readable, so times stay
// as "19:00" in the final link.
func queryEscape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			sb.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '~' || c == ':':
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, "%%%02X", c)
		}
	}
	return sb.String()
}
