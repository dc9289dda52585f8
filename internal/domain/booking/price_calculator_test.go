//go:build unit

package booking_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPriceCalculator(t *testing.T) {
	pc := booking.NewDefaultPriceCalculator()
	unitID := uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int64
	}{
		{
			name:  "one daytime hour at the base rate",
			start: day.Add(10 * time.Hour),
			end:   day.Add(11 * time.Hour),
			want:  1200,
		},
		{
			name:  "one daytime bucket is half the hourly rate",
			start: day.Add(10 * time.Hour),
			end:   day.Add(10*time.Hour + 30*time.Minute),
			want:  600,
		},
		{
			name:  "evening hours cost the evening rate",
			start: day.Add(19 * time.Hour),
			end:   day.Add(21 * time.Hour),
			want:  3600,
		},
		{
			name:  "range straddling the evening boundary mixes rates",
			start: day.Add(17 * time.Hour),
			end:   day.Add(19 * time.Hour),
			want:  1200 + 1800,
		},
		{
			name:  "trailing partial bucket is pro-rated",
			start: day.Add(10 * time.Hour),
			end:   day.Add(10*time.Hour + 45*time.Minute),
			want:  600 + 300,
		},
		{
			name:  "unaligned start pro-rates only the tail",
			start: day.Add(10*time.Hour + 15*time.Minute),
			end:   day.Add(11*time.Hour + 45*time.Minute),
			want:  1200 + 600,
		},
		{
			name:  "sub-bucket range charges the covered fraction",
			start: day.Add(10 * time.Hour),
			end:   day.Add(10*time.Hour + 10*time.Minute),
			want:  200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := mustSlot(t, tt.start, tt.end)
			assert.Equal(t, tt.want, pc.CalculatePriceCents(unitID, slot))
		})
	}
}

func TestPriceIsStableAcrossCalls(t *testing.T) {
	// Signed offers embed the price; redemption must re-derive the same
	// number for the same inputs.
	pc := booking.NewDefaultPriceCalculator()
	unitID := uuid.New()
	slot := mustSlot(t,
		time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 19, 30, 0, 0, time.UTC),
	)

	first := pc.CalculatePriceCents(unitID, slot)
	for range 10 {
		assert.Equal(t, first, pc.CalculatePriceCents(unitID, slot))
	}
}
