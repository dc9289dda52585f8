package queries

import (
	"context"
	"time"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnitNotFound = errs.New("unit not found")

type UnitQueries interface {
	ListActive(ctx context.Context) ([]*UnitView, error)
	// ListAll includes deactivated units; admin surfaces only.
	ListAll(ctx context.Context) ([]*UnitView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
	Blackouts(ctx context.Context, unitID uuid.UUID, windowStart, windowEnd time.Time) ([]*BlackoutView, error)
}

type UnitReadStore interface {
	ListActive(ctx context.Context) ([]*UnitView, error)
	ListAll(ctx context.Context) ([]*UnitView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
	BlackoutsInWindow(ctx context.Context, unitID uuid.UUID, windowStart, windowEnd time.Time) ([]*BlackoutView, error)
}

type unitQueriesImpl struct {
	readStore UnitReadStore
}

func NewUnitQueries(readStore UnitReadStore) UnitQueries {
	return &unitQueriesImpl{readStore: readStore}
}

func (q *unitQueriesImpl) ListActive(ctx context.Context) ([]*UnitView, error) {
	return q.readStore.ListActive(ctx)
}

func (q *unitQueriesImpl) ListAll(ctx context.Context) ([]*UnitView, error) {
	return q.readStore.ListAll(ctx)
}

func (q *unitQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UnitView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *unitQueriesImpl) Blackouts(ctx context.Context, unitID uuid.UUID, windowStart, windowEnd time.Time) ([]*BlackoutView, error) {
	window, err := validateWindow(windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	return q.readStore.BlackoutsInWindow(ctx, unitID, window.Start(), window.End())
}
