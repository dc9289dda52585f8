//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/notifier"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/offertoken"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laneRaceErr() error {
	return infra.WrapRepoErr("failed to create booking", &pgconn.PgError{
		Code:           "23P01",
		ConstraintName: "bookings_no_overlap",
	})
}

func selfOverlapErr() error {
	return infra.WrapRepoErr("failed to create booking", &pgconn.PgError{
		Code:           "23P01",
		ConstraintName: "bookings_no_self_overlap",
	})
}

type fakeReads struct {
	unit      *shared.UnitSnapshot
	unitErr   error
	balance   int64
	remaining int32
	unitCalls int
	capCalls  int
}

func (r *fakeReads) UnitByID(_ context.Context, _ uuid.UUID) (*shared.UnitSnapshot, error) {
	r.unitCalls++
	if r.unitErr != nil {
		return nil, r.unitErr
	}
	return r.unit, nil
}

func (r *fakeReads) BookingAccessByID(_ context.Context, _ uuid.UUID) (*shared.BookingAccessSnapshot, error) {
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *fakeReads) BalanceByUser(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.balance, nil
}

func (r *fakeReads) RemainingCapacity(_ context.Context, _ uuid.UUID, _ booking.TimeSlot) (int32, error) {
	r.capCalls++
	return r.remaining, nil
}

type fakeBookingRepo struct {
	// createErrs scripts one outcome per Create call; nil means success.
	// Calls beyond the script repeat the last entry.
	createErrs  []error
	createCalls int
}

func (f *fakeBookingRepo) Create(_ context.Context, _ sqlc.DBTX, _ *booking.Booking) (uuid.UUID, error) {
	idx := f.createCalls
	f.createCalls++
	if idx >= len(f.createErrs) {
		idx = len(f.createErrs) - 1
	}
	if idx >= 0 && f.createErrs[idx] != nil {
		return uuid.Nil, f.createErrs[idx]
	}
	return uuid.New(), nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ sqlc.DBTX, _, _ uuid.UUID) (bool, error) {
	return false, nil
}

type fakeTx struct {
	bookings *fakeBookingRepo
	reads    *fakeReads
}

func (t *fakeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *fakeTx) Credits() shared.CreditRepository   { return nil }
func (t *fakeTx) Usage() shared.UsageRepository      { return nil }
func (t *fakeTx) Units() shared.UnitRepository       { return nil }
func (t *fakeTx) Users() shared.UserRepository       { return nil }
func (t *fakeTx) Reads() shared.CommandReads         { return t.reads }
func (t *fakeTx) DB() sqlc.DBTX                      { return nil }

type fakeUoW struct {
	tx      *fakeTx
	withins int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withins++
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.tx.reads }

type fakeBookingReadStore struct{}

func (fakeBookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return &queries.BookingView{ID: id, Status: "confirmed"}, nil
}

func (fakeBookingReadStore) FindByUserFirstPage(_ context.Context, _ uuid.UUID, _ int32) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (fakeBookingReadStore) FindByUserKeyset(_ context.Context, _ uuid.UUID, _ queries.KeysetPosition, _ int32) ([]*queries.BookingListItem, error) {
	return nil, nil
}

type bookingHarness struct {
	cmd      commands.BookingCommands
	uow      *fakeUoW
	bookings *fakeBookingRepo
	reads    *fakeReads
	now      time.Time
}

func newBookingHarness(t *testing.T, reads *fakeReads, createErrs []error) *bookingHarness {
	t.Helper()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	bookings := &fakeBookingRepo{createErrs: createErrs}
	uow := &fakeUoW{tx: &fakeTx{bookings: bookings, reads: reads}}

	cmd := commands.NewBookingCommands(
		uow,
		offertoken.NewSigner("test-offer-secret", 15*time.Minute, clk),
		booking.NewDefaultPriceCalculator(),
		fakeBookingReadStore{},
		notifier.NewNoopNotifier(),
		clk,
	)
	return &bookingHarness{cmd: cmd, uow: uow, bookings: bookings, reads: reads, now: now}
}

func activeReads() *fakeReads {
	return &fakeReads{
		unit:      &shared.UnitSnapshot{ID: uuid.New(), Name: "Studio A", Capacity: 2, IsActive: true},
		balance:   0,
		remaining: 1,
	}
}

func TestBookCustomRangeLaneRaces(t *testing.T) {
	t.Run("rerun after a lost lane race succeeds on the next lane", func(t *testing.T) {
		reads := activeReads()
		h := newBookingHarness(t, reads, []error{laneRaceErr(), nil})

		view, err := h.cmd.BookCustomRange(context.Background(), uuid.New(), reads.unit.ID,
			h.now.Add(time.Hour), h.now.Add(2*time.Hour))

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, 2, h.uow.withins)
		assert.Equal(t, 2, h.bookings.createCalls)
	})

	t.Run("persistent lane conflicts exhaust the reruns and report unavailable", func(t *testing.T) {
		reads := activeReads()
		h := newBookingHarness(t, reads, []error{laneRaceErr()})

		_, err := h.cmd.BookCustomRange(context.Background(), uuid.New(), reads.unit.ID,
			h.now.Add(time.Hour), h.now.Add(2*time.Hour))

		require.ErrorIs(t, err, commands.ErrSlotUnavailable)
		assert.Equal(t, 4, h.uow.withins)
	})

	t.Run("self-overlap conflicts are terminal, not rerun", func(t *testing.T) {
		reads := activeReads()
		h := newBookingHarness(t, reads, []error{selfOverlapErr()})

		_, err := h.cmd.BookCustomRange(context.Background(), uuid.New(), reads.unit.ID,
			h.now.Add(time.Hour), h.now.Add(2*time.Hour))

		require.ErrorIs(t, err, commands.ErrSlotUnavailable)
		assert.Equal(t, 1, h.uow.withins)
	})
}

func TestBookCustomRangeTransactionalChecks(t *testing.T) {
	t.Run("deactivated unit is rejected inside the transaction", func(t *testing.T) {
		reads := activeReads()
		reads.unit.IsActive = false
		h := newBookingHarness(t, reads, nil)

		_, err := h.cmd.BookCustomRange(context.Background(), uuid.New(), reads.unit.ID,
			h.now.Add(time.Hour), h.now.Add(2*time.Hour))

		require.ErrorIs(t, err, commands.ErrUnitInactive)
		assert.Equal(t, 1, h.uow.withins)
		assert.Zero(t, h.bookings.createCalls)
	})

	t.Run("unknown unit is rejected without an insert", func(t *testing.T) {
		reads := activeReads()
		reads.unitErr = infra.WrapRepoErr("unit not found", nil, infra.KindNotFound)
		h := newBookingHarness(t, reads, nil)

		_, err := h.cmd.BookCustomRange(context.Background(), uuid.New(), uuid.New(),
			h.now.Add(time.Hour), h.now.Add(2*time.Hour))

		require.ErrorIs(t, err, commands.ErrUnitNotFound)
		assert.Zero(t, h.bookings.createCalls)
	})

	t.Run("negative balance blocks the booking", func(t *testing.T) {
		reads := activeReads()
		reads.balance = -100
		h := newBookingHarness(t, reads, nil)

		_, err := h.cmd.BookCustomRange(context.Background(), uuid.New(), reads.unit.ID,
			h.now.Add(time.Hour), h.now.Add(2*time.Hour))

		require.ErrorIs(t, err, commands.ErrInsufficientBalance)
		assert.Zero(t, h.bookings.createCalls)
	})

	t.Run("exhausted capacity is reported before any insert", func(t *testing.T) {
		reads := activeReads()
		reads.remaining = 0
		h := newBookingHarness(t, reads, nil)

		_, err := h.cmd.BookCustomRange(context.Background(), uuid.New(), reads.unit.ID,
			h.now.Add(time.Hour), h.now.Add(2*time.Hour))

		require.ErrorIs(t, err, commands.ErrSlotUnavailable)
		assert.Zero(t, h.bookings.createCalls)
	})
}
