package shared

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/credit"
	"studio-booking/internal/domain/unit"
	"studio-booking/internal/domain/usage"
	sqlc "studio-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Credits() CreditRepository
	Usage() UsageRepository
	Units() UnitRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UnitByID(ctx context.Context, id uuid.UUID) (*UnitSnapshot, error)
	BookingAccessByID(ctx context.Context, id uuid.UUID) (*BookingAccessSnapshot, error)
	// BalanceByUser returns 0 for users with no ledger activity yet.
	BalanceByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	// RemainingCapacity is the advisory re-check at booking time: the
	// minimum per-bucket remainder for the exact interval. The storage
	// exclusion constraint remains the binding rule.
	RemainingCapacity(ctx context.Context, unitID uuid.UUID, slot booking.TimeSlot) (int32, error)
}

// Minimal snapshots for command read operations (write side stays
// decoupled from read-side view types)
type UnitSnapshot struct {
	ID       uuid.UUID
	Name     string
	Capacity int32
	IsActive bool
}

type BookingAccessSnapshot struct {
	ID         uuid.UUID
	UnitID     uuid.UUID
	UserID     uuid.UUID
	Status     string
	Slot       booking.TimeSlot
	AccessCode string
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	Cancel(ctx context.Context, tx sqlc.DBTX, bookingID, userID uuid.UUID) (bool, error)
}

type CreditRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, t *credit.Transaction) (uuid.UUID, error)
}

type UsageRepository interface {
	TotalsForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (usage.Totals, error)
	SaveTotals(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, totals usage.Totals) error
	RecordReset(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, counter usage.Counter, lastSeen, billed, reported int64) error
}

type UnitRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *unit.Unit) (uuid.UUID, error)
	SetActive(ctx context.Context, tx sqlc.DBTX, unitID uuid.UUID, active bool) (bool, error)
	CreateBlackout(ctx context.Context, tx sqlc.DBTX, b *unit.Blackout) (uuid.UUID, error)
	DeleteBlackout(ctx context.Context, tx sqlc.DBTX, blackoutID uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
