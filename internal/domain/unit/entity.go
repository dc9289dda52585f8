package unit

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"studio-booking/internal/domain/booking"
)

var (
	ErrEmptyUnitName       = errors.New("unit name cannot be empty")
	ErrUnitNameTooLong     = errors.New("unit name is too long (max 255 characters)")
	ErrInvalidCapacity     = errors.New("capacity must be a positive integer")
	ErrEmptyBlackoutReason = errors.New("blackout reason cannot be empty")
)

const MaxUnitNameLength = 255

// Unit is a bookable resource with integer concurrent capacity. Immutable
// once created except for the active flag.
type Unit struct {
	id        uuid.UUID
	name      string
	capacity  int32
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewUnit(id uuid.UUID, name string, capacity int32, isActive bool) (*Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyUnitName
	}
	if len(name) > MaxUnitNameLength {
		return nil, ErrUnitNameTooLong
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Unit{
		id:       id,
		name:     name,
		capacity: capacity,
		isActive: isActive,
	}, nil
}

func (u *Unit) ID() uuid.UUID        { return u.id }
func (u *Unit) Name() string         { return u.name }
func (u *Unit) Capacity() int32      { return u.capacity }
func (u *Unit) IsActive() bool       { return u.isActive }
func (u *Unit) CreatedAt() time.Time { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time { return u.updatedAt }

// Blackout removes a unit's availability for its interval. Created and
// deleted by administrators, never mutated.
type Blackout struct {
	id     uuid.UUID
	unitID uuid.UUID
	slot   booking.TimeSlot
	reason string
}

func NewBlackout(unitID uuid.UUID, slot booking.TimeSlot, reason string) (*Blackout, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyBlackoutReason
	}

	return &Blackout{
		id:     uuid.New(),
		unitID: unitID,
		slot:   slot,
		reason: reason,
	}, nil
}

func ReconstructBlackout(id, unitID uuid.UUID, slot booking.TimeSlot, reason string) *Blackout {
	return &Blackout{id: id, unitID: unitID, slot: slot, reason: reason}
}

func (b *Blackout) ID() uuid.UUID          { return b.id }
func (b *Blackout) UnitID() uuid.UUID      { return b.unitID }
func (b *Blackout) Slot() booking.TimeSlot { return b.slot }
func (b *Blackout) Reason() string         { return b.reason }
