//go:build unit

package booking_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "valid slot",
			start: base,
			end:   base.Add(time.Hour),
		},
		{
			name:  "start equals end",
			start: base,
			end:   base,
			errIs: booking.ErrInvalidTimeSlot,
		},
		{
			name:  "start after end",
			start: base.Add(time.Hour),
			end:   base,
			errIs: booking.ErrInvalidTimeSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := booking.NewTimeSlot(tt.start, tt.end)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, slot.Start())
			assert.Equal(t, tt.end, slot.End())
		})
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	slot := mustSlot(t, base, base.Add(time.Hour))

	tests := []struct {
		name  string
		other booking.TimeSlot
		want  bool
	}{
		{
			name:  "identical",
			other: mustSlot(t, base, base.Add(time.Hour)),
			want:  true,
		},
		{
			name:  "partial overlap",
			other: mustSlot(t, base.Add(30*time.Minute), base.Add(90*time.Minute)),
			want:  true,
		},
		{
			name:  "touching at end does not overlap",
			other: mustSlot(t, base.Add(time.Hour), base.Add(2*time.Hour)),
			want:  false,
		},
		{
			name:  "touching at start does not overlap",
			other: mustSlot(t, base.Add(-time.Hour), base),
			want:  false,
		},
		{
			name:  "disjoint",
			other: mustSlot(t, base.Add(3*time.Hour), base.Add(4*time.Hour)),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(slot))
		})
	}
}

func TestTimeSlotContains(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	slot := mustSlot(t, base, base.Add(time.Hour))

	assert.True(t, slot.Contains(base), "start is inside the half-open interval")
	assert.True(t, slot.Contains(base.Add(59*time.Minute)))
	assert.False(t, slot.Contains(base.Add(time.Hour)), "end is outside the half-open interval")
	assert.False(t, slot.Contains(base.Add(-time.Second)))
}

func TestSnapToBucket(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "already aligned",
			in:   time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
			want: time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "snaps down within a bucket",
			in:   time.Date(2026, 3, 10, 10, 44, 59, 0, time.UTC),
			want: time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "snaps down to the hour",
			in:   time.Date(2026, 3, 10, 10, 29, 59, 999999999, time.UTC),
			want: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.SnapToBucket(tt.in))
		})
	}
}

func TestTimeSlotBuckets(t *testing.T) {
	t.Run("aligned window yields consecutive buckets", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
		slot := mustSlot(t, start, start.Add(90*time.Minute))

		buckets := slot.Buckets()
		require.Len(t, buckets, 3)
		for i, b := range buckets {
			assert.Equal(t, start.Add(time.Duration(i)*booking.BucketWidth), b.Start())
			assert.Equal(t, booking.BucketWidth, b.Duration())
		}
	})

	t.Run("unaligned window snaps the first bucket down", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 10, 10, 0, 0, time.UTC)
		slot := mustSlot(t, start, start.Add(30*time.Minute))

		buckets := slot.Buckets()
		require.Len(t, buckets, 2)
		assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), buckets[0].Start())
		assert.Equal(t, time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC), buckets[1].Start())
	})
}

func TestTimeSlotValidation(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("future validation", func(t *testing.T) {
		slot := mustSlot(t, base, base.Add(time.Hour))
		assert.NoError(t, slot.ValidateFuture(base))
		assert.NoError(t, slot.ValidateFuture(base.Add(-time.Minute)))
		assert.ErrorIs(t, slot.ValidateFuture(base.Add(time.Minute)), booking.ErrSlotInPast)
	})

	t.Run("span validation", func(t *testing.T) {
		short := mustSlot(t, base, base.Add(24*time.Hour))
		assert.NoError(t, short.ValidateSpan(booking.MaxWindowSpan))

		long := mustSlot(t, base, base.Add(booking.MaxWindowSpan+time.Second))
		assert.ErrorIs(t, long.ValidateSpan(booking.MaxWindowSpan), booking.ErrWindowTooLong)
	})
}
