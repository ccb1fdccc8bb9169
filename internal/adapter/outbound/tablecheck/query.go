package tablecheck

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// Fixed service parameters sent on every filtered search. The svd token is
// regenerated per request to defeat upstream result caching.
const (
	paramServiceMode = "dining"
	paramVenueType   = "restaurant"
	searchPageSize   = 50
)

// SearchQuery translates a SearchRequest into the /shop_search query
// string. Absent optional fields are omitted entirely: the upstream
// distinguishes "unset" from "zero", so zero-filling would change meaning.
func SearchQuery(req domain.SearchRequest) url.Values {
	q := url.Values{}
	q.Set("service_mode", paramServiceMode)
	q.Set("venue_type", paramVenueType)
	q.Set("per_page", strconv.Itoa(searchPageSize))
	q.Set("svd", uuid.NewString())
	q.Set("locale", string(req.Locale))

	if req.Geo != nil {
		q.Set("geo_latitude", formatFloat(req.Geo.Latitude))
		q.Set("geo_longitude", formatFloat(req.Geo.Longitude))
	}
	if req.GeoDistanceKM != nil {
		q.Set("geo_distance", formatFloat(*req.GeoDistanceKM)+"km")
	}
	// Repeated array parameter, one entry per canonical id, order as resolved.
	for _, id := range req.Cuisines {
		q.Add("cuisines[]", id)
	}
	if req.DateMin != "" {
		q.Set("date_min", req.DateMin)
	}
	if req.DateMax != "" {
		q.Set("date_max", req.DateMax)
	}
	if req.NumPeople != nil {
		q.Set("num_people", strconv.Itoa(*req.NumPeople))
	}
	if req.Time != "" {
		// Coupled pair: a concrete time only makes sense with the
		// same-meal-time availability mode.
		q.Set("time", req.Time)
		q.Set("availability_mode", "same_meal_time")
	}
	if req.BudgetMin != nil {
		q.Set("budget_dinner_avg_min", formatFloat(*req.BudgetMin))
	}
	if req.BudgetMax != nil {
		q.Set("budget_dinner_avg_max", formatFloat(*req.BudgetMax))
	}
	if req.SortBy != "" {
		q.Set("sort_by", string(req.SortBy))
	}
	if req.SortOrder != "" {
		q.Set("sort_order", string(req.SortOrder))
	}
	return q
}

// AutocompleteQuery translates a SearchRequest into the /autocomplete
// query string. The endpoint accepts only the raw text and locale; filter
// parameters have no equivalent there.
func AutocompleteQuery(req domain.SearchRequest) url.Values {
	q := url.Values{}
	q.Set("locale", string(req.Locale))
	q.Set("text", req.Query)
	return q
}

// AvailabilityBody translates an AvailabilityRequest into the hub calendar
// request body. All three identifying fields are mandatory and validated
// by the caller before this layer; num_people is serialized as text, as
// the hub endpoint expects.
func AvailabilityBody(req domain.AvailabilityRequest) availabilityBody {
	return availabilityBody{
		Locale:    string(req.Locale),
		StartAt:   req.StartAt,
		ShopID:    req.ShopID,
		NumPeople: strconv.Itoa(req.NumPeople),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
