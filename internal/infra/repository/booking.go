package repository

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingParams) (uuid.UUID, error)
	CancelBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries *sqlc.Queries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create inserts a confirmed booking into the lowest free stacking lane.
// pgx.ErrNoRows here means no lane could hold the interval, i.e. capacity
// is exhausted; an exclusion-constraint violation means a concurrent
// insert won the same lane. Both surface as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	params := sqlc.InsertBookingParams{
		UnitID:     b.UnitID(),
		UserID:     b.UserID(),
		Slot:       pgconv.RangeToPgtype(b.Slot().Start(), b.Slot().End()),
		PriceCents: b.PriceCents(),
	}

	id, err := r.queries.InsertBooking(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("no free lane for slot", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, tx sqlc.DBTX, bookingID, userID uuid.UUID) (bool, error) {
	affected, err := r.queries.CancelBooking(ctx, tx, sqlc.CancelBookingParams{
		ID:     bookingID,
		UserID: userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}

	return affected > 0, nil
}
