package readstore

import (
	"context"
	"time"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type DensityViewQueries interface {
	GetUnitByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Unit, error)
	GetConfirmedBookingsForWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.GetConfirmedBookingsForWindowParams) ([]sqlc.GetConfirmedBookingsForWindowRow, error)
}

type DensityReadStore struct {
	queries DensityViewQueries
	db      sqlc.DBTX
}

func NewDensityReadStore(q *sqlc.Queries, db sqlc.DBTX) *DensityReadStore {
	return &DensityReadStore{
		queries: q,
		db:      db,
	}
}

func (r *DensityReadStore) UnitByID(ctx context.Context, id uuid.UUID) (*queries.UnitView, error) {
	row, err := r.queries.GetUnitByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unit by ID", err)
	}

	return toUnitView(row), nil
}

func (r *DensityReadStore) ConfirmedIntervals(ctx context.Context, unitID uuid.UUID, windowStart, windowEnd time.Time) ([]queries.Interval, error) {
	rows, err := r.queries.GetConfirmedBookingsForWindow(ctx, r.db, sqlc.GetConfirmedBookingsForWindowParams{
		UnitID: unitID,
		Slot:   pgconv.RangeToPgtype(windowStart, windowEnd),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load confirmed bookings for window", err)
	}

	result := make([]queries.Interval, len(rows))
	for i, row := range rows {
		start, end := pgconv.RangeBounds(row.Slot)
		result[i] = queries.Interval{Start: start, End: end}
	}

	return result, nil
}
