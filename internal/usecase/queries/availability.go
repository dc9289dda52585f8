package queries

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/offertoken"
)

var (
	ErrInvalidWindow = errs.New("window start must be before window end")
	ErrWindowTooLong = errs.New("window exceeds maximum span")
)

type AvailabilityQueries interface {
	// Buckets reports remaining capacity per (30-minute bucket, unit) over
	// the window. Cells at zero remainder are omitted.
	Buckets(ctx context.Context, windowStart, windowEnd time.Time) ([]CapacityRow, error)
	// Offers turns every future free bucket in the window into a signed
	// price quote.
	Offers(ctx context.Context, windowStart, windowEnd time.Time) ([]SlotOffer, error)
}

type AvailabilityReadStore interface {
	BucketsInWindow(ctx context.Context, bucketStart, windowEnd time.Time) ([]CapacityRow, error)
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
	pricer    booking.PriceCalculator
	signer    *offertoken.Signer
	clock     clock.Clock
}

func NewAvailabilityQueries(readStore AvailabilityReadStore, pricer booking.PriceCalculator, signer *offertoken.Signer, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		readStore: readStore,
		pricer:    pricer,
		signer:    signer,
		clock:     clk,
	}
}

func (q *availabilityQueriesImpl) Buckets(ctx context.Context, windowStart, windowEnd time.Time) ([]CapacityRow, error) {
	window, err := validateWindow(windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	return q.readStore.BucketsInWindow(ctx, booking.SnapToBucket(window.Start()), window.End())
}

func (q *availabilityQueriesImpl) Offers(ctx context.Context, windowStart, windowEnd time.Time) ([]SlotOffer, error) {
	rows, err := q.Buckets(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	offers := make([]SlotOffer, 0, len(rows))
	for _, row := range rows {
		// Buckets already underway are not quotable.
		if row.BucketStart.Before(now) {
			continue
		}

		slot, err := booking.NewTimeSlot(row.BucketStart, row.BucketEnd)
		if err != nil {
			return nil, errs.Wrap(err, "availability returned invalid bucket")
		}

		price := q.pricer.CalculatePriceCents(row.UnitID, slot)
		offer, err := q.signer.Sign(row.UnitID, slot, price)
		if err != nil {
			return nil, errs.Wrap(err, "failed to sign offer")
		}

		offers = append(offers, SlotOffer{
			UnitID:     row.UnitID,
			SlotStart:  slot.Start(),
			SlotEnd:    slot.End(),
			PriceCents: price,
			Signature:  offer.Signature,
			ExpiresAt:  offer.ExpiresAt,
		})
	}

	return offers, nil
}

func validateWindow(start, end time.Time) (booking.TimeSlot, error) {
	window, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return booking.TimeSlot{}, ErrInvalidWindow
	}
	if err := window.ValidateSpan(booking.MaxWindowSpan); err != nil {
		return booking.TimeSlot{}, ErrWindowTooLong
	}
	return window, nil
}
