package queries

import (
	"context"
	"sort"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"

	"github.com/google/uuid"
)

// Segment is a maximal stretch of the window with a constant number of
// concurrent confirmed bookings. Zero-count stretches are reported too.
type Segment struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Count int32     `json:"count"`
}

type DensityTimeline struct {
	UnitID   uuid.UUID `json:"unit_id"`
	Capacity int32     `json:"capacity"`
	Segments []Segment `json:"segments"`
}

type DensityQueries interface {
	Timeline(ctx context.Context, unitID uuid.UUID, windowStart, windowEnd time.Time) (*DensityTimeline, error)
}

// Interval is one booked stretch, already clipped to confirmed status by
// the store.
type Interval struct {
	Start time.Time
	End   time.Time
}

type DensityReadStore interface {
	UnitByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
	// ConfirmedIntervals returns every confirmed booking overlapping the
	// window, unclipped.
	ConfirmedIntervals(ctx context.Context, unitID uuid.UUID, windowStart, windowEnd time.Time) ([]Interval, error)
}

type densityQueriesImpl struct {
	readStore DensityReadStore
}

func NewDensityQueries(readStore DensityReadStore) DensityQueries {
	return &densityQueriesImpl{readStore: readStore}
}

func (q *densityQueriesImpl) Timeline(ctx context.Context, unitID uuid.UUID, windowStart, windowEnd time.Time) (*DensityTimeline, error) {
	window, err := validateWindow(windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	unitView, err := q.readStore.UnitByID(ctx, unitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}

	intervals, err := q.readStore.ConfirmedIntervals(ctx, unitID, window.Start(), window.End())
	if err != nil {
		return nil, err
	}

	return &DensityTimeline{
		UnitID:   unitID,
		Capacity: unitView.Capacity,
		Segments: sweepSegments(window, intervals),
	}, nil
}

// sweepSegments walks booking endpoints in order, carrying the count of
// intervals open at each boundary. The initial count is the number of
// bookings already in progress at the window start; every endpoint
// strictly inside the window then shifts the count by one. Segments
// with equal adjacent counts never occur because only count-changing
// instants become boundaries.
func sweepSegments(window booking.TimeSlot, intervals []Interval) []Segment {
	type event struct {
		at    time.Time
		delta int32
	}

	var count int32
	events := make([]event, 0, 2*len(intervals))
	for _, iv := range intervals {
		if !iv.Start.After(window.Start()) {
			count++
		} else if iv.Start.Before(window.End()) {
			events = append(events, event{at: iv.Start, delta: 1})
		}
		if iv.End.After(window.Start()) && iv.End.Before(window.End()) {
			events = append(events, event{at: iv.End, delta: -1})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].at.Before(events[j].at)
	})

	segments := make([]Segment, 0, len(events)+1)
	cursor := window.Start()
	for i := 0; i < len(events); {
		at := events[i].at
		var delta int32
		for ; i < len(events) && events[i].at.Equal(at); i++ {
			delta += events[i].delta
		}
		// Coincident start/end pairs cancel out and open no boundary.
		if delta == 0 {
			continue
		}
		if at.After(cursor) {
			segments = append(segments, Segment{Start: cursor, End: at, Count: count})
			cursor = at
		}
		count += delta
	}

	if cursor.Before(window.End()) {
		segments = append(segments, Segment{Start: cursor, End: window.End(), Count: count})
	}

	return segments
}
