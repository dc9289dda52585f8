package readstore

import (
	"context"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	GetBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByUserFirstPageParams) ([]sqlc.GetBookingsByUserFirstPageRow, error)
	GetBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByUserKeysetParams) ([]sqlc.GetBookingsByUserKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(q *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: q,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToBookingView(row), nil
}

func rowToBookingView(row sqlc.GetBookingByIDRow) *queries.BookingView {
	start, end := pgconv.RangeBounds(row.Slot)
	return &queries.BookingView{
		ID:         row.ID,
		UnitID:     row.UnitID,
		UnitName:   row.UnitName,
		UserID:     row.UserID,
		UserEmail:  row.UserEmail,
		SlotStart:  start,
		SlotEnd:    end,
		Status:     row.Status,
		PriceCents: row.PriceCents,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.GetBookingsByUserFirstPage(ctx, r.db, sqlc.GetBookingsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings first page", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItemFromFirstPageRow(row)
	}

	return result, nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, after queries.KeysetPosition, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.GetBookingsByUserKeyset(ctx, r.db, sqlc.GetBookingsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(after.At),
		ID:        after.ID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings keyset", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItemFromKeysetRow(row)
	}

	return result, nil
}

func toBookingListItemFromFirstPageRow(row sqlc.GetBookingsByUserFirstPageRow) *queries.BookingListItem {
	start, end := pgconv.RangeBounds(row.Slot)
	return &queries.BookingListItem{
		ID:         row.ID,
		UnitID:     row.UnitID,
		UnitName:   row.UnitName,
		SlotStart:  start,
		SlotEnd:    end,
		Status:     row.Status,
		PriceCents: row.PriceCents,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toBookingListItemFromKeysetRow(row sqlc.GetBookingsByUserKeysetRow) *queries.BookingListItem {
	start, end := pgconv.RangeBounds(row.Slot)
	return &queries.BookingListItem{
		ID:         row.ID,
		UnitID:     row.UnitID,
		UnitName:   row.UnitName,
		SlotStart:  start,
		SlotEnd:    end,
		Status:     row.Status,
		PriceCents: row.PriceCents,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
