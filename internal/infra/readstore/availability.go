package readstore

import (
	"context"
	"time"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"
)

type AvailabilityViewQueries interface {
	GetAvailabilityBuckets(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAvailabilityBucketsParams) ([]sqlc.GetAvailabilityBucketsRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityViewQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(q *sqlc.Queries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: q,
		db:      db,
	}
}

// BucketsInWindow expects bucketStart already snapped to a bucket
// boundary; the SQL walks 30-minute steps from there.
func (r *AvailabilityReadStore) BucketsInWindow(ctx context.Context, bucketStart, windowEnd time.Time) ([]queries.CapacityRow, error) {
	rows, err := r.queries.GetAvailabilityBuckets(ctx, r.db, sqlc.GetAvailabilityBucketsParams{
		BucketStart: pgconv.TimeToPgtype(bucketStart),
		WindowEnd:   pgconv.TimeToPgtype(windowEnd),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute availability buckets", err)
	}

	result := make([]queries.CapacityRow, len(rows))
	for i, row := range rows {
		result[i] = queries.CapacityRow{
			BucketStart: pgconv.TimeFromPgtype(row.BucketStart),
			BucketEnd:   pgconv.TimeFromPgtype(row.BucketEnd),
			UnitID:      row.UnitID,
			Remaining:   row.Remaining,
		}
	}

	return result, nil
}
