package tablecheck

import (
	"log/slog"
	"sort"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// Normalizer converts raw upstream payloads into domain records. One
// function per upstream shape: the two search endpoints are reconciled by
// the calling code path, never by sniffing fields on the payload.
type Normalizer struct {
	links  *LinkBuilder
	logger *slog.Logger
}

// NewNormalizer creates a Normalizer that embeds reservation links built
// by links into every restaurant record.
func NewNormalizer(links *LinkBuilder, logger *slog.Logger) *Normalizer {
	return &Normalizer{
		links:  links,
		logger: logger.With("component", "normalizer"),
	}
}

// FromShopSearch normalizes a structured /shop_search response. Records
// with neither slug nor id are dropped: the slug is the join key for
// availability and link generation and must never be empty.
func (n *Normalizer) FromShopSearch(resp shopSearchResponse, req domain.SearchRequest) []domain.RestaurantRecord {
	records := make([]domain.RestaurantRecord, 0, len(resp.Shops))
	for _, shop := range resp.Shops {
		slug, id, ok := joinKey(shop.Slug, shop.ID)
		if !ok {
			n.logger.Warn("Dropping search result without slug or id")
			continue
		}
		rec := domain.RestaurantRecord{
			ID:       id,
			Name:     firstNonEmpty(shop.Name),
			Slug:     slug,
			Cuisines: shop.Cuisines,
			Geo:      coordinateOf(shop.Geocode),
			Currency: shop.Currency,
			Pricing: domain.Pricing{
				Average: shop.BudgetAvg,
				Lunch:   domain.PriceRange{Min: shop.BudgetLunchAvgMin, Max: shop.BudgetLunchAvgMax},
				Dinner:  domain.PriceRange{Min: shop.BudgetDinnerAvgMin, Max: shop.BudgetDinnerAvgMax},
			},
			AvailableDates: shop.Availability,
			ImageURL:       shop.SearchImage,
		}
		rec.ReservationURL = n.links.Build(rec.Slug, req, req.Locale)
		records = append(records, rec)
	}
	return records
}

// FromAutocomplete normalizes the shop hits of a free-text /autocomplete
// response. The shape is flat with the slug nested under "payload"; the
// "shops" key may be absent entirely, which decodes to a nil slice and
// yields an empty result here.
func (n *Normalizer) FromAutocomplete(resp autocompleteResponse, req domain.SearchRequest) []domain.RestaurantRecord {
	records := make([]domain.RestaurantRecord, 0, len(resp.Shops))
	for _, shop := range resp.Shops {
		var payload autocompletePayload
		if shop.Payload != nil {
			payload = *shop.Payload
		}
		slug, id, ok := joinKey(payload.ShopSlug, shop.ID)
		if !ok {
			n.logger.Warn("Dropping autocomplete result without slug or id")
			continue
		}
		rec := domain.RestaurantRecord{
			ID:       id,
			Name:     shop.Text,
			Slug:     slug,
			Cuisines: payload.Cuisines,
			Geo:      coordinateOf(shop.Geocode),
			Currency: payload.Currency,
			Pricing: domain.Pricing{
				// The free-text shape reports only a dinner average;
				// lunch and dinner ranges stay absent rather than
				// being derived from it.
				Average: payload.BudgetDinnerAvg,
			},
			AvailableDates: payload.Availability,
			ImageURL:       payload.SearchImage,
		}
		rec.ReservationURL = n.links.Build(rec.Slug, req, req.Locale)
		records = append(records, rec)
	}
	return records
}

// FromCuisines normalizes the /cuisines catalog for one locale. Entries
// whose translation list lacks the requested locale are skipped; falling
// back to another language would make locale switches lie about names.
func (n *Normalizer) FromCuisines(resp cuisinesResponse, locale domain.Locale) []domain.CuisineRecord {
	records := make([]domain.CuisineRecord, 0, len(resp.Cuisines))
	for _, c := range resp.Cuisines {
		if c.ID == "" {
			continue
		}
		name, ok := translationFor(c.Translations, locale)
		if !ok {
			n.logger.Debug("Skipping cuisine without translation",
				slog.String("cuisine_id", c.ID), slog.String("locale", string(locale)))
			continue
		}
		records = append(records, domain.CuisineRecord{ID: c.ID, Name: name})
	}
	return records
}

// FromAvailability flattens the two-level date -> time -> bookable map
// into a slot list. Every slot carries the request's party size since the
// upstream calendar has no per-slot size. A response without the calendar
// container yields an empty list: "no data" and "zero open slots" are
// indistinguishable to the caller.
func (n *Normalizer) FromAvailability(resp availabilityResponse, numPeople int) []domain.AvailabilitySlot {
	data := resp.AvailabilityCalendar.Data
	if len(data) == 0 {
		return []domain.AvailabilitySlot{}
	}
	slots := make([]domain.AvailabilitySlot, 0, len(data)*4)
	for _, date := range sortedKeys(data) {
		times := data[date]
		for _, t := range sortedKeys(times) {
			slots = append(slots, domain.AvailabilitySlot{
				Date:      date,
				Time:      t,
				Available: times[t],
				NumPeople: numPeople,
			})
		}
	}
	return slots
}

// joinKey picks the record key: slug first, id as fallback. ok is false
// when both are absent and the record must be dropped.
func joinKey(slug, id string) (string, string, bool) {
	switch {
	case slug != "":
		if id == "" {
			id = slug
		}
		return slug, id, true
	case id != "":
		return id, id, true
	default:
		return "", "", false
	}
}

// coordinateOf converts the nested geocode, or returns nil when either
// component is missing. No fabricated zeros: (0, 0) is a real place.
func coordinateOf(g *geocode) *domain.Coordinate {
	if g == nil || g.Lat == nil || g.Lon == nil {
		return nil
	}
	return &domain.Coordinate{Latitude: *g.Lat, Longitude: *g.Lon}
}

func firstNonEmpty(names []string) string {
	for _, n := range names {
		if n != "" {
			return n
		}
	}
	return ""
}

// sortedKeys gives map iteration a stable order so flattened slots come
// out sorted by date, then time.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func translationFor(ts []rawTranslation, locale domain.Locale) (string, bool) {
	for _, t := range ts {
		if t.Locale == string(locale) && t.Translation != "" {
			return t.Translation, true
		}
	}
	return "", false
}
