package request

import "github.com/google/uuid"

type AppendCreditRequest struct {
	UserID      uuid.UUID  `json:"user_id" binding:"required"`
	AmountCents int64      `json:"amount_cents" binding:"required"`
	Kind        string     `json:"kind" binding:"required,oneof=purchase usage_charge adjustment"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	PaymentID   *string    `json:"payment_id,omitempty"`
	Note        string     `json:"note"`
}
