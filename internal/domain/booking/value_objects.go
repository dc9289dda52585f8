package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
	ErrWindowTooLong   = errors.New("window exceeds maximum span")
	ErrSlotInPast      = errors.New("slot start cannot be in the past")
)

const (
	// BucketWidth is the fixed alignment window used for capacity aggregation.
	BucketWidth = 30 * time.Minute

	// MaxWindowSpan caps availability and density query windows.
	MaxWindowSpan = 62 * 24 * time.Hour
)

// TimeSlot is a half-open [start,end) interval.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) Contains(instant time.Time) bool {
	return !instant.Before(ts.start) && instant.Before(ts.end)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

func (ts TimeSlot) ValidateFuture(now time.Time) error {
	if ts.start.Before(now) {
		return ErrSlotInPast
	}
	return nil
}

func (ts TimeSlot) ValidateSpan(maxSpan time.Duration) error {
	if ts.Duration() > maxSpan {
		return ErrWindowTooLong
	}
	return nil
}

// SnapToBucket truncates t down to the nearest bucket boundary.
func SnapToBucket(t time.Time) time.Time {
	return t.Truncate(BucketWidth)
}

// Buckets enumerates consecutive bucket slots covering the window, starting
// at the snapped-down window start.
func (ts TimeSlot) Buckets() []TimeSlot {
	var out []TimeSlot
	for cur := SnapToBucket(ts.start); cur.Before(ts.end); cur = cur.Add(BucketWidth) {
		out = append(out, TimeSlot{start: cur, end: cur.Add(BucketWidth)})
	}
	return out
}
