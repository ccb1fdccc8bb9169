package tablecheck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebridge/tablebridge/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestSearchQuery_FixedParams(t *testing.T) {
	assert := assert.New(t)
	q := SearchQuery(domain.SearchRequest{Locale: domain.LocaleEN})

	assert.Equal("dining", q.Get("service_mode"))
	assert.Equal("restaurant", q.Get("venue_type"))
	assert.Equal("50", q.Get("per_page"))
	assert.Equal("en", q.Get("locale"))
	assert.NotEmpty(q.Get("svd"))
}

func TestSearchQuery_CacheBusterVariesPerRequest(t *testing.T) {
	req := domain.SearchRequest{Locale: domain.LocaleEN}
	first := SearchQuery(req).Get("svd")
	second := SearchQuery(req).Get("svd")
	assert.NotEqual(t, first, second)
}

func TestSearchQuery_AbsentOptionalsAreOmitted(t *testing.T) {
	assert := assert.New(t)
	q := SearchQuery(domain.SearchRequest{Locale: domain.LocaleEN})

	// Omission, not zero-filling: the upstream distinguishes unset from zero.
	for _, key := range []string{
		"geo_latitude", "geo_longitude", "geo_distance",
		"date_min", "date_max", "num_people", "time", "availability_mode",
		"budget_dinner_avg_min", "budget_dinner_avg_max",
		"sort_by", "sort_order",
	} {
		_, present := q[key]
		assert.False(present, "expected %q to be omitted", key)
	}
	_, present := q["cuisines[]"]
	assert.False(present)
}

func TestSearchQuery_AllFilters(t *testing.T) {
	assert := assert.New(t)
	req := domain.SearchRequest{
		Geo:           &domain.Coordinate{Latitude: 35.658034, Longitude: 139.701636},
		GeoDistanceKM: floatPtr(5),
		Cuisines:      []string{"sushi", "indian-curry"},
		DateMin:       "2025-07-01",
		DateMax:       "2025-07-31",
		NumPeople:     intPtr(2),
		Time:          "19:00",
		BudgetMin:     floatPtr(3000),
		BudgetMax:     floatPtr(8000),
		SortBy:        domain.SortByPrice,
		SortOrder:     domain.SortAsc,
		Locale:        domain.LocaleJP,
	}
	q := SearchQuery(req)

	assert.Equal("35.658034", q.Get("geo_latitude"))
	assert.Equal("139.701636", q.Get("geo_longitude"))
	assert.Equal("5km", q.Get("geo_distance"))
	assert.Equal("2025-07-01", q.Get("date_min"))
	assert.Equal("2025-07-31", q.Get("date_max"))
	assert.Equal("2", q.Get("num_people"))
	assert.Equal("3000", q.Get("budget_dinner_avg_min"))
	assert.Equal("8000", q.Get("budget_dinner_avg_max"))
	assert.Equal("price", q.Get("sort_by"))
	assert.Equal("asc", q.Get("sort_order"))
	assert.Equal("jp", q.Get("locale"))
	// Repeated array param, order preserved from the resolved list.
	assert.Equal([]string{"sushi", "indian-curry"}, q["cuisines[]"])
}

func TestSearchQuery_TimeForcesSameMealTimeMode(t *testing.T) {
	assert := assert.New(t)

	withTime := SearchQuery(domain.SearchRequest{Time: "19:00", Locale: domain.LocaleEN})
	assert.Equal("19:00", withTime.Get("time"))
	assert.Equal("same_meal_time", withTime.Get("availability_mode"))

	withoutTime := SearchQuery(domain.SearchRequest{Locale: domain.LocaleEN})
	_, present := withoutTime["availability_mode"]
	assert.False(present, "availability_mode is coupled to time and must be absent without it")
}

func TestAutocompleteQuery(t *testing.T) {
	q := AutocompleteQuery(domain.SearchRequest{
		Query:  "sushi ginza",
		Locale: domain.LocaleEN,
		// Filters must not leak into the narrow text endpoint.
		NumPeople: intPtr(4),
		Cuisines:  []string{"sushi"},
	})
	assert.Equal(t, "sushi ginza", q.Get("text"))
	assert.Equal(t, "en", q.Get("locale"))
	assert.Len(t, q, 2)
}

func TestAvailabilityBody(t *testing.T) {
	require := require.New(t)
	body := AvailabilityBody(domain.AvailabilityRequest{
		ShopID:    "sushi-taro",
		StartAt:   "2025-07-15T00:00:00Z",
		NumPeople: 2,
		Locale:    domain.LocaleEN,
	})

	raw, err := json.Marshal(body)
	require.NoError(err)

	var decoded map[string]any
	require.NoError(json.Unmarshal(raw, &decoded))
	assert.Equal(t, "sushi-taro", decoded["shop_id"])
	assert.Equal(t, "2025-07-15T00:00:00Z", decoded["start_at"])
	assert.Equal(t, "en", decoded["locale"])
	// The hub endpoint expects the party size as text, not a number.
	assert.Equal(t, "2", decoded["num_people"])
}
