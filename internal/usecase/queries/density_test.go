//go:build unit

package queries

import (
	"testing"
	"time"

	"studio-booking/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSweepSegments(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }
	window := func(t *testing.T, start, end time.Time) booking.TimeSlot {
		t.Helper()
		w, err := booking.NewTimeSlot(start, end)
		require.NoError(t, err)
		return w
	}

	tests := []struct {
		name      string
		window    booking.TimeSlot
		intervals []Interval
		want      []Segment
	}{
		{
			name:      "empty window is one zero segment",
			window:    window(t, at(10, 0), at(12, 0)),
			intervals: nil,
			want: []Segment{
				{Start: at(10, 0), End: at(12, 0), Count: 0},
			},
		},
		{
			name:   "single booking inside the window",
			window: window(t, at(10, 0), at(13, 0)),
			intervals: []Interval{
				{Start: at(11, 0), End: at(12, 0)},
			},
			want: []Segment{
				{Start: at(10, 0), End: at(11, 0), Count: 0},
				{Start: at(11, 0), End: at(12, 0), Count: 1},
				{Start: at(12, 0), End: at(13, 0), Count: 0},
			},
		},
		{
			name:   "booking already in progress at window start",
			window: window(t, at(10, 0), at(12, 0)),
			intervals: []Interval{
				{Start: at(9, 0), End: at(11, 0)},
			},
			want: []Segment{
				{Start: at(10, 0), End: at(11, 0), Count: 1},
				{Start: at(11, 0), End: at(12, 0), Count: 0},
			},
		},
		{
			name:   "overlapping bookings stack",
			window: window(t, at(10, 0), at(14, 0)),
			intervals: []Interval{
				{Start: at(10, 30), End: at(12, 30)},
				{Start: at(11, 0), End: at(13, 0)},
				{Start: at(11, 30), End: at(12, 0)},
			},
			want: []Segment{
				{Start: at(10, 0), End: at(10, 30), Count: 0},
				{Start: at(10, 30), End: at(11, 0), Count: 1},
				{Start: at(11, 0), End: at(11, 30), Count: 2},
				{Start: at(11, 30), End: at(12, 0), Count: 3},
				{Start: at(12, 0), End: at(12, 30), Count: 2},
				{Start: at(12, 30), End: at(13, 0), Count: 1},
				{Start: at(13, 0), End: at(14, 0), Count: 0},
			},
		},
		{
			name:   "coincident end and start cancel without a boundary",
			window: window(t, at(10, 0), at(13, 0)),
			intervals: []Interval{
				{Start: at(10, 0), End: at(11, 30)},
				{Start: at(11, 30), End: at(13, 0)},
			},
			want: []Segment{
				{Start: at(10, 0), End: at(13, 0), Count: 1},
			},
		},
		{
			name:   "booking spanning the whole window",
			window: window(t, at(10, 0), at(12, 0)),
			intervals: []Interval{
				{Start: at(8, 0), End: at(20, 0)},
			},
			want: []Segment{
				{Start: at(10, 0), End: at(12, 0), Count: 1},
			},
		},
		{
			name:   "booking ending exactly at window end keeps its count",
			window: window(t, at(10, 0), at(12, 0)),
			intervals: []Interval{
				{Start: at(11, 0), End: at(12, 0)},
			},
			want: []Segment{
				{Start: at(10, 0), End: at(11, 0), Count: 0},
				{Start: at(11, 0), End: at(12, 0), Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sweepSegments(tt.window, tt.intervals)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSweepSegmentsReconstruction(t *testing.T) {
	// Segments must tile the window exactly: contiguous, no gaps, and
	// adjacent segments never share a count.
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	window, err := booking.NewTimeSlot(day.Add(9*time.Hour), day.Add(18*time.Hour))
	require.NoError(t, err)

	intervals := []Interval{
		{Start: day.Add(8 * time.Hour), End: day.Add(10 * time.Hour)},
		{Start: day.Add(9*time.Hour + 30*time.Minute), End: day.Add(11 * time.Hour)},
		{Start: day.Add(10 * time.Hour), End: day.Add(12 * time.Hour)},
		{Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour)},
		{Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour)},
	}

	segments := sweepSegments(window, intervals)
	require.NotEmpty(t, segments)

	require.True(t, segments[0].Start.Equal(window.Start()))
	require.True(t, segments[len(segments)-1].End.Equal(window.End()))
	for i := 1; i < len(segments); i++ {
		require.True(t, segments[i].Start.Equal(segments[i-1].End), "segments must be contiguous")
		require.NotEqual(t, segments[i-1].Count, segments[i].Count, "adjacent segments must differ in count")
	}
}
