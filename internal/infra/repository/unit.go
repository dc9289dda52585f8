package repository

import (
	"context"

	"studio-booking/internal/domain/unit"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UnitWriteQueries interface {
	CreateUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUnitParams) (uuid.UUID, error)
	SetUnitActive(ctx context.Context, db sqlc.DBTX, arg sqlc.SetUnitActiveParams) (int64, error)
	CreateBlackout(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlackoutParams) (uuid.UUID, error)
	DeleteBlackout(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UnitRepository struct {
	queries UnitWriteQueries
}

func NewUnitRepository(queries *sqlc.Queries) *UnitRepository {
	return &UnitRepository{queries: queries}
}

func (r *UnitRepository) Create(ctx context.Context, tx sqlc.DBTX, u *unit.Unit) (uuid.UUID, error) {
	id, err := r.queries.CreateUnit(ctx, tx, sqlc.CreateUnitParams{
		Name:     u.Name(),
		Capacity: u.Capacity(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create unit", err)
	}
	return id, nil
}

func (r *UnitRepository) SetActive(ctx context.Context, tx sqlc.DBTX, unitID uuid.UUID, active bool) (bool, error) {
	affected, err := r.queries.SetUnitActive(ctx, tx, sqlc.SetUnitActiveParams{
		ID:       unitID,
		IsActive: active,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to set unit active flag", err)
	}
	return affected > 0, nil
}

func (r *UnitRepository) CreateBlackout(ctx context.Context, tx sqlc.DBTX, b *unit.Blackout) (uuid.UUID, error) {
	id, err := r.queries.CreateBlackout(ctx, tx, sqlc.CreateBlackoutParams{
		UnitID: b.UnitID(),
		During: pgconv.RangeToPgtype(b.Slot().Start(), b.Slot().End()),
		Reason: b.Reason(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create blackout", err)
	}
	return id, nil
}

func (r *UnitRepository) DeleteBlackout(ctx context.Context, tx sqlc.DBTX, blackoutID uuid.UUID) (bool, error) {
	affected, err := r.queries.DeleteBlackout(ctx, tx, blackoutID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete blackout", err)
	}
	return affected > 0, nil
}
