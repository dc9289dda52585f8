// Package notifier pushes door-access events to interested systems
// (access controller, front desk dashboards). Delivery is best effort:
// bookings never fail because a notification could not be sent.
package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AccessEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	UnitID     uuid.UUID `json:"unit_id"`
	AccessCode string    `json:"access_code"`
	SlotStart  time.Time `json:"slot_start"`
	SlotEnd    time.Time `json:"slot_end"`
}

type AccessNotifier interface {
	AccessGranted(ctx context.Context, event AccessEvent) error
	AccessRevoked(ctx context.Context, event AccessEvent) error
}

// NoopNotifier is used in tests and when no broker is configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) AccessGranted(_ context.Context, _ AccessEvent) error {
	return nil
}

func (n *NoopNotifier) AccessRevoked(_ context.Context, _ AccessEvent) error {
	return nil
}
