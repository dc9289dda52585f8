package request

import (
	"time"

	"github.com/google/uuid"
)

// RedeemOfferRequest echoes the displayed offer back. Every field is
// checked against the signature byte-for-byte; clients cannot adjust the
// price or interval.
type RedeemOfferRequest struct {
	UnitID     uuid.UUID `json:"unit_id" binding:"required"`
	SlotStart  time.Time `json:"slot_start" binding:"required"`
	SlotEnd    time.Time `json:"slot_end" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"required"`
	Signature  string    `json:"signature" binding:"required"`
}

type BookCustomRangeRequest struct {
	UnitID    uuid.UUID `json:"unit_id" binding:"required"`
	SlotStart time.Time `json:"slot_start" binding:"required"`
	SlotEnd   time.Time `json:"slot_end" binding:"required"`
}
