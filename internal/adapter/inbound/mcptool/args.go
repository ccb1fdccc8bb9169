package mcptool

import (
	"fmt"
	"regexp"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// Input guard clauses. These run before any upstream call; a validation
// failure short-circuits locally and never reaches the network.

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

const (
	minPartySize = 1
	maxPartySize = 20
)

// optString reads an optional string argument.
func optString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return s, nil
}

// optFloat reads an optional numeric argument. A nil result means the
// caller omitted the parameter, which must stay distinguishable from zero.
func optFloat(args map[string]any, key string) (*float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64) // JSON numbers decode to float64
	if !ok {
		return nil, fmt.Errorf("parameter %q must be a number", key)
	}
	return &f, nil
}

func optInt(args map[string]any, key string) (*int, error) {
	f, err := optFloat(args, key)
	if err != nil || f == nil {
		return nil, err
	}
	if *f != float64(int(*f)) {
		return nil, fmt.Errorf("parameter %q must be an integer", key)
	}
	i := int(*f)
	return &i, nil
}

func optStringSlice(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("parameter %q must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("parameter %q must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

func requireString(args map[string]any, key string) (string, error) {
	s, err := optString(args, key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("parameter %q is required", key)
	}
	return s, nil
}

func validateDate(key, value string) error {
	if value != "" && !dateRe.MatchString(value) {
		return fmt.Errorf("parameter %q must be an ISO date (YYYY-MM-DD), got %q", key, value)
	}
	return nil
}

func validateTime(value string) error {
	if value != "" && !timeRe.MatchString(value) {
		return fmt.Errorf("parameter \"time\" must be HH:MM, got %q", value)
	}
	return nil
}

func validatePartySize(n int) error {
	if n < minPartySize || n > maxPartySize {
		return fmt.Errorf("parameter \"num_people\" must be between %d and %d, got %d", minPartySize, maxPartySize, n)
	}
	return nil
}

func validateCoordinate(lat, lng *float64) (*domain.Coordinate, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, fmt.Errorf("latitude and longitude must be provided together")
	}
	if *lat < -90 || *lat > 90 {
		return nil, fmt.Errorf("latitude must be in [-90, 90], got %v", *lat)
	}
	if *lng < -180 || *lng > 180 {
		return nil, fmt.Errorf("longitude must be in [-180, 180], got %v", *lng)
	}
	return &domain.Coordinate{Latitude: *lat, Longitude: *lng}, nil
}

func parseLocale(args map[string]any) (domain.Locale, error) {
	s, err := optString(args, "locale")
	if err != nil {
		return "", err
	}
	if s == "" {
		return domain.DefaultLocale, nil
	}
	locale := domain.Locale(s)
	if !locale.Valid() {
		return "", fmt.Errorf("parameter \"locale\" must be \"en\" or \"jp\", got %q", s)
	}
	return locale, nil
}

func parseSort(args map[string]any) (domain.SortBy, domain.SortOrder, error) {
	sortBy, err := optString(args, "sort_by")
	if err != nil {
		return "", "", err
	}
	switch domain.SortBy(sortBy) {
	case "", domain.SortByDistance, domain.SortByPrice:
	default:
		return "", "", fmt.Errorf("parameter \"sort_by\" must be \"distance\" or \"price\", got %q", sortBy)
	}
	sortOrder, err := optString(args, "sort_order")
	if err != nil {
		return "", "", err
	}
	switch domain.SortOrder(sortOrder) {
	case "", domain.SortAsc, domain.SortDesc:
	default:
		return "", "", fmt.Errorf("parameter \"sort_order\" must be \"asc\" or \"desc\", got %q", sortOrder)
	}
	return domain.SortBy(sortBy), domain.SortOrder(sortOrder), nil
}

// parseSearchRequest assembles a SearchRequest from tool arguments,
// running every local guard clause on the way.
func parseSearchRequest(args map[string]any) (domain.SearchRequest, string, error) {
	var req domain.SearchRequest

	query, err := optString(args, "query")
	if err != nil {
		return req, "", err
	}
	location, err := optString(args, "location")
	if err != nil {
		return req, "", err
	}
	lat, err := optFloat(args, "latitude")
	if err != nil {
		return req, "", err
	}
	lng, err := optFloat(args, "longitude")
	if err != nil {
		return req, "", err
	}
	geo, err := validateCoordinate(lat, lng)
	if err != nil {
		return req, "", err
	}
	cuisines, err := optStringSlice(args, "cuisine")
	if err != nil {
		return req, "", err
	}
	dateMin, err := optString(args, "date_min")
	if err != nil {
		return req, "", err
	}
	if err := validateDate("date_min", dateMin); err != nil {
		return req, "", err
	}
	dateMax, err := optString(args, "date_max")
	if err != nil {
		return req, "", err
	}
	if err := validateDate("date_max", dateMax); err != nil {
		return req, "", err
	}
	numPeople, err := optInt(args, "num_people")
	if err != nil {
		return req, "", err
	}
	if numPeople != nil {
		if err := validatePartySize(*numPeople); err != nil {
			return req, "", err
		}
	}
	seatTime, err := optString(args, "time")
	if err != nil {
		return req, "", err
	}
	if err := validateTime(seatTime); err != nil {
		return req, "", err
	}
	budgetMin, err := optFloat(args, "budget_min")
	if err != nil {
		return req, "", err
	}
	budgetMax, err := optFloat(args, "budget_max")
	if err != nil {
		return req, "", err
	}
	distance, err := optFloat(args, "distance")
	if err != nil {
		return req, "", err
	}
	if distance != nil && *distance <= 0 {
		return req, "", fmt.Errorf("parameter \"distance\" must be positive, got %v", *distance)
	}
	sortBy, sortOrder, err := parseSort(args)
	if err != nil {
		return req, "", err
	}
	locale, err := parseLocale(args)
	if err != nil {
		return req, "", err
	}

	req = domain.SearchRequest{
		Query:         query,
		Geo:           geo,
		GeoDistanceKM: distance,
		Cuisines:      cuisines,
		DateMin:       dateMin,
		DateMax:       dateMax,
		NumPeople:     numPeople,
		Time:          seatTime,
		BudgetMin:     budgetMin,
		BudgetMax:     budgetMax,
		SortBy:        sortBy,
		SortOrder:     sortOrder,
		Locale:        locale,
	}
	return req, location, nil
}
