//go:build unit

package usage_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/usage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name       string
		prev       usage.Totals
		rep        usage.Report
		wantBill   usage.Billable
		wantNext   usage.Totals
		wantResets []usage.Counter
		errIs      error
	}{
		{
			name:     "first report bills everything",
			prev:     usage.Totals{},
			rep:      usage.Report{Copies: 120, Stencils: 3, ReportedAt: t0},
			wantBill: usage.Billable{Copies: 120, Stencils: 3},
			wantNext: usage.Totals{
				Copies: 120, Stencils: 3,
				CopiesBilled: 120, StencilsBilled: 3,
				ReportedAt: t0,
			},
		},
		{
			name: "monotonic increase bills the delta",
			prev: usage.Totals{
				Copies: 120, Stencils: 3,
				CopiesBilled: 120, StencilsBilled: 3,
			},
			rep:      usage.Report{Copies: 150, Stencils: 5, ReportedAt: t0},
			wantBill: usage.Billable{Copies: 30, Stencils: 2},
			wantNext: usage.Totals{
				Copies: 150, Stencils: 5,
				CopiesBilled: 150, StencilsBilled: 5,
				ReportedAt: t0,
			},
		},
		{
			name: "identical report re-delivered bills nothing",
			prev: usage.Totals{
				Copies: 150, Stencils: 5,
				CopiesBilled: 150, StencilsBilled: 5,
			},
			rep:      usage.Report{Copies: 150, Stencils: 5, ReportedAt: t0},
			wantBill: usage.Billable{},
			wantNext: usage.Totals{
				Copies: 150, Stencils: 5,
				CopiesBilled: 150, StencilsBilled: 5,
				ReportedAt: t0,
			},
		},
		{
			name: "counter reset bills unbilled remainder plus new reading",
			prev: usage.Totals{
				Copies: 500, Stencils: 10,
				CopiesBilled: 480, StencilsBilled: 10,
			},
			rep:      usage.Report{Copies: 40, Stencils: 12, ReportedAt: t0},
			wantBill: usage.Billable{Copies: 20 + 40, Stencils: 2},
			wantNext: usage.Totals{
				Copies: 40, Stencils: 12,
				CopiesBilled: 40, StencilsBilled: 12,
				ReportedAt: t0,
			},
			wantResets: []usage.Counter{usage.CounterCopies},
		},
		{
			name: "both counters reset independently",
			prev: usage.Totals{
				Copies: 500, Stencils: 10,
				CopiesBilled: 500, StencilsBilled: 10,
			},
			rep:      usage.Report{Copies: 0, Stencils: 1, ReportedAt: t0},
			wantBill: usage.Billable{Copies: 0, Stencils: 1},
			wantNext: usage.Totals{
				Copies: 0, Stencils: 1,
				CopiesBilled: 0, StencilsBilled: 1,
				ReportedAt: t0,
			},
			wantResets: []usage.Counter{usage.CounterCopies, usage.CounterStencils},
		},
		{
			name:  "negative counter is rejected",
			prev:  usage.Totals{},
			rep:   usage.Report{Copies: -1, ReportedAt: t0},
			errIs: usage.ErrNegativeCounter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill, next, resets, err := usage.Reconcile(tt.prev, tt.rep)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantBill, bill); diff != "" {
				t.Errorf("bill mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantNext, next); diff != "" {
				t.Errorf("totals mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantResets, resets)
		})
	}
}

func TestReconcileAfterReset(t *testing.T) {
	// The report following a reset must bill only its own delta. The
	// watermark has to land on the post-reset reading or the next delta
	// would be miscounted.
	prev := usage.Totals{Copies: 500, CopiesBilled: 500}

	bill, next, resets, err := usage.Reconcile(prev, usage.Report{Copies: 40, ReportedAt: t0})
	require.NoError(t, err)
	assert.Equal(t, int64(40), bill.Copies)
	assert.Equal(t, []usage.Counter{usage.CounterCopies}, resets)

	bill, next, resets, err = usage.Reconcile(next, usage.Report{Copies: 90, ReportedAt: t0.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, int64(50), bill.Copies)
	assert.Empty(t, resets)
	assert.Equal(t, int64(90), next.CopiesBilled)
}

func TestBillableIsZero(t *testing.T) {
	assert.True(t, usage.Billable{}.IsZero())
	assert.False(t, usage.Billable{Copies: 1}.IsZero())
	assert.False(t, usage.Billable{Stencils: 1}.IsZero())
}
