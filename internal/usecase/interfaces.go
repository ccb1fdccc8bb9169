package usecase

import (
	"context"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// RestaurantClient is the outbound port to the upstream reservation API.
// Every method translates one upstream endpoint and returns normalized
// domain records; upstream failures come back as *domain.APIError.
type RestaurantClient interface {
	// SearchShops runs the structured filtered search.
	SearchShops(ctx context.Context, req domain.SearchRequest) ([]domain.RestaurantRecord, error)

	// SearchText runs the free-text autocomplete search. Only the query
	// text and locale reach the upstream; filters have no equivalent there.
	SearchText(ctx context.Context, req domain.SearchRequest) ([]domain.RestaurantRecord, error)

	// ListCuisines fetches the cuisine catalog resolved for a locale.
	ListCuisines(ctx context.Context, locale domain.Locale) ([]domain.CuisineRecord, error)

	// AvailabilityCalendar fetches one shop's calendar as flat slots.
	AvailabilityCalendar(ctx context.Context, req domain.AvailabilityRequest) ([]domain.AvailabilitySlot, error)
}

// PlaceResolver maps a free-text place name to a coordinate. It never
// fails: unresolvable input degrades to a default anchor.
type PlaceResolver interface {
	Resolve(text string) domain.Coordinate
}

// ReservationLinkBuilder builds the canonical reservation URL for a slug
// plus a subset of search parameters. Implementations must be pure and
// deterministic so repeated calls hand out byte-identical links.
type ReservationLinkBuilder interface {
	Build(slug string, req domain.SearchRequest, locale domain.Locale) string
}
