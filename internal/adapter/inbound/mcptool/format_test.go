package mcptool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tablebridge/tablebridge/internal/domain"
)

func TestFormatRestaurants_Empty(t *testing.T) {
	assert.Equal(t, "No restaurants found.", formatRestaurants(nil))
}

func TestFormatRestaurants(t *testing.T) {
	assert := assert.New(t)
	avg := 12000.0
	min := 10000.0
	records := []domain.RestaurantRecord{
		{
			Name:           "Sushi Taro",
			Slug:           "sushi-taro",
			Cuisines:       []string{"sushi", "kaiseki"},
			Currency:       "JPY",
			Pricing:        domain.Pricing{Average: &avg, Dinner: domain.PriceRange{Min: &min}},
			AvailableDates: []string{"2025-07-15"},
			ReservationURL: "https://example.com/en/sushi-taro/reserve",
		},
		{
			Name:           "Mystery Diner",
			Slug:           "mystery-diner",
			ReservationURL: "https://example.com/en/mystery-diner/reserve",
		},
	}
	out := formatRestaurants(records)

	assert.Contains(out, "Found 2 restaurants")
	assert.Contains(out, "**Sushi Taro**")
	assert.Contains(out, "sushi, kaiseki")
	assert.Contains(out, "avg 12000 JPY")
	assert.Contains(out, "dinner from 10000 JPY")
	assert.Contains(out, "2025-07-15")
	// Records without pricing render without a price line at all.
	assert.NotContains(out, "Price: \n")
}

func TestFormatSlots(t *testing.T) {
	assert := assert.New(t)
	slots := []domain.AvailabilitySlot{
		{Date: "2025-07-15", Time: "18:00", Available: true, NumPeople: 2},
		{Date: "2025-07-15", Time: "19:00", Available: false, NumPeople: 2},
		{Date: "2025-07-16", Time: "12:00", Available: true, NumPeople: 2},
	}
	out := formatSlots(slots)

	assert.Contains(out, "party of 2")
	assert.Contains(out, "**2025-07-15**")
	assert.Contains(out, "**2025-07-16**")
	assert.Contains(out, "- 18:00: available")
	assert.Contains(out, "- 19:00: booked")
}

func TestFormatSlots_Empty(t *testing.T) {
	assert.Equal(t, "No availability data for the requested period.", formatSlots(nil))
}

func TestFormatCuisines(t *testing.T) {
	out := formatCuisines([]domain.CuisineRecord{{ID: "sushi", Name: "Sushi"}})
	assert.Contains(t, out, "1 cuisines")
	assert.Contains(t, out, "- Sushi (`sushi`)")
}

func TestFormatCuisines_Empty(t *testing.T) {
	assert.Equal(t, "No cuisines available for this locale.", formatCuisines(nil))
}
