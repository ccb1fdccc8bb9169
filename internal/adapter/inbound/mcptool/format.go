package mcptool

import (
	"fmt"
	"strings"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// Markdown rendering of normalized records. Pure presentation layered on
// top of the domain model; nothing here feeds back into search logic.

func formatRestaurants(records []domain.RestaurantRecord) string {
	if len(records) == 0 {
		return "No restaurants found."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d restaurants:\n", len(records))
	for i, rec := range records {
		fmt.Fprintf(&sb, "\n%d. **%s**\n", i+1, rec.Name)
		if len(rec.Cuisines) > 0 {
			fmt.Fprintf(&sb, "   - Cuisine: %s\n", strings.Join(rec.Cuisines, ", "))
		}
		if price := formatPricing(rec.Pricing, rec.Currency); price != "" {
			fmt.Fprintf(&sb, "   - Price: %s\n", price)
		}
		if len(rec.AvailableDates) > 0 {
			dates := rec.AvailableDates
			if len(dates) > 5 {
				dates = dates[:5]
			}
			fmt.Fprintf(&sb, "   - Available: %s\n", strings.Join(dates, ", "))
		}
		fmt.Fprintf(&sb, "   - Reserve: %s\n", rec.ReservationURL)
	}
	return sb.String()
}

func formatPricing(p domain.Pricing, currency string) string {
	var parts []string
	if p.Average != nil {
		parts = append(parts, fmt.Sprintf("avg %s", formatMoney(*p.Average, currency)))
	}
	if !p.Lunch.Empty() {
		parts = append(parts, "lunch "+formatRange(p.Lunch, currency))
	}
	if !p.Dinner.Empty() {
		parts = append(parts, "dinner "+formatRange(p.Dinner, currency))
	}
	return strings.Join(parts, ", ")
}

func formatRange(r domain.PriceRange, currency string) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%s-%s", formatMoney(*r.Min, currency), formatMoney(*r.Max, currency))
	case r.Min != nil:
		return fmt.Sprintf("from %s", formatMoney(*r.Min, currency))
	case r.Max != nil:
		return fmt.Sprintf("up to %s", formatMoney(*r.Max, currency))
	default:
		return ""
	}
}

func formatMoney(v float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.0f %s", v, currency)
}

func formatSlots(slots []domain.AvailabilitySlot) string {
	if len(slots) == 0 {
		return "No availability data for the requested period."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Availability (party of %d):\n", slots[0].NumPeople)
	currentDate := ""
	for _, slot := range slots {
		if slot.Date != currentDate {
			currentDate = slot.Date
			fmt.Fprintf(&sb, "\n**%s**\n", currentDate)
		}
		mark := "available"
		if !slot.Available {
			mark = "booked"
		}
		fmt.Fprintf(&sb, "- %s: %s\n", slot.Time, mark)
	}
	return sb.String()
}

func formatCuisines(records []domain.CuisineRecord) string {
	if len(records) == 0 {
		return "No cuisines available for this locale."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d cuisines:\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(&sb, "- %s (`%s`)\n", rec.Name, rec.ID)
	}
	return sb.String()
}
