package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// SearchUseCase orchestrates restaurant search. Two paths, selected by
// the request shape:
//
//   - no free-text query: a single filtered /shop_search call;
//   - free-text query present: cuisine ids matching the query are resolved
//     first and injected into the filters, then the text search and the
//     filtered search both run and their results are concatenated with the
//     text-search results first.
//
// The two combined-path calls have no data dependency once cuisine ids are
// resolved, so they run concurrently; the concatenation order is the only
// ordering guarantee. Results are deliberately not deduplicated across the
// two calls.
type SearchUseCase struct {
	client   RestaurantClient
	cuisines *CuisineCatalogUseCase
	places   PlaceResolver
	logger   *slog.Logger
}

// NewSearchUseCase creates a SearchUseCase.
func NewSearchUseCase(client RestaurantClient, cuisines *CuisineCatalogUseCase, places PlaceResolver, logger *slog.Logger) *SearchUseCase {
	return &SearchUseCase{
		client:   client,
		cuisines: cuisines,
		places:   places,
		logger:   logger.With("usecase", "Search"),
	}
}

// Execute runs a search. Location is an optional free-text place name; it
// is resolved to a coordinate here (never failing) unless the request
// already carries an explicit anchor, which wins.
func (uc *SearchUseCase) Execute(ctx context.Context, req domain.SearchRequest, location string) ([]domain.RestaurantRecord, error) {
	log := uc.logger.With(slog.String("query", req.Query), slog.String("locale", string(req.Locale)))

	if req.Locale == "" {
		req.Locale = domain.DefaultLocale
	}
	if req.Geo == nil && location != "" {
		geo := uc.places.Resolve(location)
		req.Geo = &geo
		log.Debug("Resolved location to coordinate",
			slog.String("location", location),
			slog.Float64("lat", geo.Latitude), slog.Float64("lng", geo.Longitude))
	}
	// Radius default lives at this boundary, not inside the translator.
	if req.Geo != nil && req.GeoDistanceKM == nil {
		d := domain.DefaultGeoDistanceKM
		req.GeoDistanceKM = &d
	}

	if req.Query == "" {
		log.Info("Running filtered search")
		records, err := uc.client.SearchShops(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("filtered search failed: %w", err)
		}
		return records, nil
	}

	log.Info("Running combined search")
	matched, err := uc.cuisines.Match(ctx, req.Query, req.Locale)
	if err != nil {
		return nil, fmt.Errorf("cuisine match failed: %w", err)
	}
	if len(matched) > 0 {
		req.Cuisines = append(req.Cuisines, matched...)
		log.Debug("Injected matched cuisines", slog.Any("cuisine_ids", matched))
	}

	var textRecords, filteredRecords []domain.RestaurantRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		textRecords, err = uc.client.SearchText(gctx, req)
		if err != nil {
			return fmt.Errorf("text search failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		filteredRecords, err = uc.client.SearchShops(gctx, req)
		if err != nil {
			return fmt.Errorf("filtered search failed: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("Combined search completed",
		slog.Int("text_results", len(textRecords)), slog.Int("filtered_results", len(filteredRecords)))
	return append(textRecords, filteredRecords...), nil
}
