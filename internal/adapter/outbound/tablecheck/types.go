package tablecheck

// Raw wire shapes for the upstream reservation API. The two search
// endpoints return structurally different records; each gets its own type
// and its own normalization path rather than a merged superset schema,
// since the upstream can change either shape independently.

// geocode is the nested coordinate object shared by both search shapes.
type geocode struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// shopSearchResponse is the envelope of GET /shop_search.
type shopSearchResponse struct {
	Shops      []searchShop `json:"shops"`
	TotalCount int          `json:"total_count"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
}

// searchShop is one structured search hit. Name is list-valued: the first
// entry is the display name in the requested locale, later entries are
// alternate renderings. Budget fields are pointers because the upstream
// distinguishes "not reported" from zero.
type searchShop struct {
	ID                 string   `json:"id"`
	Slug               string   `json:"slug"`
	Name               []string `json:"name"`
	Cuisines           []string `json:"cuisines"`
	Geocode            *geocode `json:"geocode"`
	Currency           string   `json:"currency"`
	BudgetAvg          *float64 `json:"budget_avg"`
	BudgetLunchAvgMin  *float64 `json:"budget_lunch_avg_min"`
	BudgetLunchAvgMax  *float64 `json:"budget_lunch_avg_max"`
	BudgetDinnerAvgMin *float64 `json:"budget_dinner_avg_min"`
	BudgetDinnerAvgMax *float64 `json:"budget_dinner_avg_max"`
	Availability       []string `json:"availability"`
	SearchImage        string   `json:"search_image"`
}

// autocompleteResponse is the envelope of GET /autocomplete. The upstream
// omits each key entirely when it has no hits of that kind and returns {}
// when it has neither, so both slices must tolerate absence.
type autocompleteResponse struct {
	Cuisines []autocompleteCuisine `json:"cuisines"`
	Shops    []autocompleteShop    `json:"shops"`
}

// autocompleteShop is one free-text search hit: a flat record with the
// display name in "text", the coordinate in a nested "geocode" and the
// slug buried in a nested "payload".
type autocompleteShop struct {
	ID      string               `json:"id"`
	Text    string               `json:"text"`
	Geocode *geocode             `json:"geocode"`
	Payload *autocompletePayload `json:"payload"`
}

type autocompletePayload struct {
	ShopSlug        string   `json:"shop_slug"`
	Cuisines        []string `json:"cuisines"`
	Currency        string   `json:"currency"`
	BudgetDinnerAvg *float64 `json:"budget_dinner_avg"`
	Availability    []string `json:"availability"`
	SearchImage     string   `json:"search_image"`
}

// autocompleteCuisine is a cuisine suggestion from the free-text endpoint.
type autocompleteCuisine struct {
	Text    string `json:"text"`
	Payload struct {
		CuisineID string `json:"cuisine_id"`
	} `json:"payload"`
}

// cuisinesResponse is the envelope of GET /cuisines. Each entry carries a
// locale-keyed translation list; display names are resolved per request
// locale, never silently falling back to another language.
type cuisinesResponse struct {
	Cuisines []rawCuisine `json:"cuisines"`
}

type rawCuisine struct {
	ID           string           `json:"id"`
	Translations []rawTranslation `json:"name_translations"`
}

type rawTranslation struct {
	Locale      string `json:"locale"`
	Translation string `json:"translation"`
}

// availabilityBody is the JSON body of POST /hub/availability_calendar.
// NumPeople is serialized as a string because that is what the hub
// endpoint expects.
type availabilityBody struct {
	Locale    string `json:"locale"`
	StartAt   string `json:"start_at"`
	ShopID    string `json:"shop_id"`
	NumPeople string `json:"num_people"`
}

// availabilityResponse is the calendar envelope: a two-level map of
// date -> time -> bookable.
type availabilityResponse struct {
	AvailabilityCalendar struct {
		Data map[string]map[string]bool `json:"data"`
	} `json:"availability_calendar"`
}
