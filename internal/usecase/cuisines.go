package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// CuisineCatalogUseCase lists the upstream cuisine catalog and matches
// free text against it. The catalog is fetched fresh on every call; the
// whole system is request-scoped with no cross-call caches.
type CuisineCatalogUseCase struct {
	client RestaurantClient
	logger *slog.Logger
}

// NewCuisineCatalogUseCase creates a CuisineCatalogUseCase.
func NewCuisineCatalogUseCase(client RestaurantClient, logger *slog.Logger) *CuisineCatalogUseCase {
	return &CuisineCatalogUseCase{
		client: client,
		logger: logger.With("usecase", "CuisineCatalog"),
	}
}

// List returns the catalog with display names resolved for locale.
// Entries lacking a translation for that locale are already skipped by
// the normalization layer.
func (uc *CuisineCatalogUseCase) List(ctx context.Context, locale domain.Locale) ([]domain.CuisineRecord, error) {
	if locale == "" {
		locale = domain.DefaultLocale
	}
	records, err := uc.client.ListCuisines(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to list cuisines: %w", err)
	}
	uc.logger.Debug("Listed cuisines", slog.Int("count", len(records)), slog.String("locale", string(locale)))
	return records, nil
}

// Match returns the canonical ids of catalog entries matching query. A
// cuisine matches when its id contains the dash-joined variant of the
// query (canonical ids are hyphenated tokens) or its localized display
// name contains the lowercased query. An empty result is a valid "no
// match", not an error.
func (uc *CuisineCatalogUseCase) Match(ctx context.Context, query string, locale domain.Locale) ([]string, error) {
	records, err := uc.List(ctx, locale)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(strings.TrimSpace(query))
	dashed := strings.ReplaceAll(lowered, " ", "-")
	if lowered == "" {
		return nil, nil
	}

	var ids []string
	for _, rec := range records {
		if strings.Contains(rec.ID, dashed) || strings.Contains(strings.ToLower(rec.Name), lowered) {
			ids = append(ids, rec.ID)
		}
	}
	uc.logger.Debug("Matched cuisines", slog.String("query", query), slog.Any("cuisine_ids", ids))
	return ids, nil
}
