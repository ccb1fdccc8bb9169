package usecase

import (
	"log/slog"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// ReservationLinkUseCase hands out prefilled reservation links for a
// known shop slug without touching the network.
type ReservationLinkUseCase struct {
	links  ReservationLinkBuilder
	logger *slog.Logger
}

// NewReservationLinkUseCase creates a ReservationLinkUseCase.
func NewReservationLinkUseCase(links ReservationLinkBuilder, logger *slog.Logger) *ReservationLinkUseCase {
	return &ReservationLinkUseCase{
		links:  links,
		logger: logger.With("usecase", "ReservationLink"),
	}
}

// Execute builds the canonical reservation URL for slug, prefilled from
// req. Purely local and deterministic.
func (uc *ReservationLinkUseCase) Execute(slug string, req domain.SearchRequest, locale domain.Locale) string {
	if locale == "" {
		locale = domain.DefaultLocale
	}
	link := uc.links.Build(slug, req, locale)
	uc.logger.Debug("Built reservation link", slog.String("slug", slug), slog.String("url", link))
	return link
}
