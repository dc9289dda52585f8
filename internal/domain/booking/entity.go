package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrAlreadyCanceled = errors.New("booking is already canceled")
)

type Booking struct {
	id         uuid.UUID
	unitID     uuid.UUID
	userID     uuid.UUID
	slot       TimeSlot
	status     Status
	priceCents int64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(unitID, userID uuid.UUID, slot TimeSlot, priceCents int64) (*Booking, error) {
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		unitID:     unitID,
		userID:     userID,
		slot:       slot,
		status:     StatusConfirmed,
		priceCents: priceCents,
	}, nil
}

func ReconstructBooking(
	id, unitID, userID uuid.UUID,
	slot TimeSlot,
	status Status,
	priceCents int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		unitID:     unitID,
		userID:     userID,
		slot:       slot,
		status:     status,
		priceCents: priceCents,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) HasEnded(now time.Time) bool {
	return !now.Before(b.slot.End())
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UnitID() uuid.UUID    { return b.unitID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) PriceCents() int64    { return b.priceCents }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
