package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// AvailabilityUseCase looks up one shop's availability calendar.
type AvailabilityUseCase struct {
	client RestaurantClient
	logger *slog.Logger
}

// NewAvailabilityUseCase creates an AvailabilityUseCase.
func NewAvailabilityUseCase(client RestaurantClient, logger *slog.Logger) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		client: client,
		logger: logger.With("usecase", "Availability"),
	}
}

// Execute fetches the calendar. Shop id, start timestamp and party size
// are all mandatory and must be validated by the caller before this
// point; an empty slot list means the upstream reported no availability
// data, which is indistinguishable from zero open slots.
func (uc *AvailabilityUseCase) Execute(ctx context.Context, req domain.AvailabilityRequest) ([]domain.AvailabilitySlot, error) {
	if req.Locale == "" {
		req.Locale = domain.DefaultLocale
	}
	log := uc.logger.With(slog.String("shop_id", req.ShopID), slog.Int("num_people", req.NumPeople))
	log.Info("Fetching availability calendar")

	slots, err := uc.client.AvailabilityCalendar(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("availability lookup for %s failed: %w", req.ShopID, err)
	}
	log.Debug("Availability calendar fetched", slog.Int("slots", len(slots)))
	return slots, nil
}
