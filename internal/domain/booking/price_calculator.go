package booking

import (
	"github.com/google/uuid"
)

// PriceCalculator must be a stable pure function of (slot, unit): signed
// offers embed its result, and redemption re-derives nothing price-wise.
type PriceCalculator interface {
	CalculatePriceCents(unitID uuid.UUID, slot TimeSlot) int64
}

type DefaultPriceCalculator struct {
	HourlyRateCents  int64
	EveningRateCents int64
	EveningStartHour int
	EveningEndHour   int
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		HourlyRateCents:  1200,
		EveningRateCents: 1800,
		EveningStartHour: 18,
		EveningEndHour:   23,
	}
}

func (pc *DefaultPriceCalculator) CalculatePriceCents(_ uuid.UUID, slot TimeSlot) int64 {
	var total float64
	for cur := slot.Start(); cur.Before(slot.End()); cur = cur.Add(BucketWidth) {
		rate := pc.HourlyRateCents
		if h := cur.Hour(); h >= pc.EveningStartHour && h < pc.EveningEndHour {
			rate = pc.EveningRateCents
		}
		// Custom ranges need not fill their last bucket; charge only the
		// covered fraction.
		step := BucketWidth
		if remaining := slot.End().Sub(cur); remaining < step {
			step = remaining
		}
		total += float64(rate) * step.Hours()
	}
	return int64(total)
}
