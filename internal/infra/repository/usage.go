package repository

import (
	"context"

	"studio-booking/internal/domain/usage"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UsageWriteQueries interface {
	GetUsageTotalsForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.UsageTotal, error)
	UpsertUsageTotals(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUsageTotalsParams) error
	InsertUsageReset(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertUsageResetParams) error
}

type UsageRepository struct {
	queries UsageWriteQueries
}

func NewUsageRepository(queries *sqlc.Queries) *UsageRepository {
	return &UsageRepository{queries: queries}
}

// TotalsForUpdate locks the per-user totals row for the reconciliation
// transaction. A missing row is a fresh user: zero totals, no error.
func (r *UsageRepository) TotalsForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (usage.Totals, error) {
	row, err := r.queries.GetUsageTotalsForUpdate(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return usage.Totals{}, nil
		}
		return usage.Totals{}, infra.WrapRepoErr("failed to load usage totals", err)
	}

	return usage.Totals{
		Copies:         row.Copies,
		Stencils:       row.Stencils,
		CopiesBilled:   row.CopiesBilled,
		StencilsBilled: row.StencilsBilled,
		ReportedAt:     row.ReportedAt.Time,
	}, nil
}

func (r *UsageRepository) SaveTotals(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, totals usage.Totals) error {
	err := r.queries.UpsertUsageTotals(ctx, tx, sqlc.UpsertUsageTotalsParams{
		UserID:         userID,
		Copies:         totals.Copies,
		Stencils:       totals.Stencils,
		CopiesBilled:   totals.CopiesBilled,
		StencilsBilled: totals.StencilsBilled,
		ReportedAt:     pgconv.TimeToPgtype(totals.ReportedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save usage totals", err)
	}
	return nil
}

func (r *UsageRepository) RecordReset(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, counter usage.Counter, lastSeen, billed, reported int64) error {
	err := r.queries.InsertUsageReset(ctx, tx, sqlc.InsertUsageResetParams{
		UserID:   userID,
		Counter:  string(counter),
		LastSeen: lastSeen,
		Billed:   billed,
		Reported: reported,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record usage reset", err)
	}
	return nil
}
