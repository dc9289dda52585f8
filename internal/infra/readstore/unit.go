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

type UnitViewQueries interface {
	ListActiveUnits(ctx context.Context, db sqlc.DBTX) ([]sqlc.Unit, error)
	ListUnits(ctx context.Context, db sqlc.DBTX) ([]sqlc.Unit, error)
	GetUnitByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Unit, error)
	ListBlackoutsByUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlackoutsByUnitParams) ([]sqlc.Blackout, error)
}

type UnitReadStore struct {
	queries UnitViewQueries
	db      sqlc.DBTX
}

func NewUnitReadStore(q *sqlc.Queries, db sqlc.DBTX) *UnitReadStore {
	return &UnitReadStore{
		queries: q,
		db:      db,
	}
}

func (r *UnitReadStore) ListActive(ctx context.Context) ([]*queries.UnitView, error) {
	rows, err := r.queries.ListActiveUnits(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active units", err)
	}
	return toUnitViews(rows), nil
}

func (r *UnitReadStore) ListAll(ctx context.Context) ([]*queries.UnitView, error) {
	rows, err := r.queries.ListUnits(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list units", err)
	}
	return toUnitViews(rows), nil
}

func (r *UnitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UnitView, error) {
	row, err := r.queries.GetUnitByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unit by ID", err)
	}
	return toUnitView(row), nil
}

func (r *UnitReadStore) BlackoutsInWindow(ctx context.Context, unitID uuid.UUID, windowStart, windowEnd time.Time) ([]*queries.BlackoutView, error) {
	rows, err := r.queries.ListBlackoutsByUnit(ctx, r.db, sqlc.ListBlackoutsByUnitParams{
		UnitID: unitID,
		During: pgconv.RangeToPgtype(windowStart, windowEnd),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}

	result := make([]*queries.BlackoutView, len(rows))
	for i, row := range rows {
		start, end := pgconv.RangeBounds(row.During)
		result[i] = &queries.BlackoutView{
			ID:        row.ID,
			UnitID:    row.UnitID,
			SlotStart: start,
			SlotEnd:   end,
			Reason:    row.Reason,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func toUnitView(row sqlc.Unit) *queries.UnitView {
	return &queries.UnitView{
		ID:        row.ID,
		Name:      row.Name,
		Capacity:  row.Capacity,
		IsActive:  row.IsActive,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toUnitViews(rows []sqlc.Unit) []*queries.UnitView {
	result := make([]*queries.UnitView, len(rows))
	for i, row := range rows {
		result[i] = toUnitView(row)
	}
	return result
}
