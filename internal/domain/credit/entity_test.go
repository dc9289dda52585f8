//go:build unit

package credit_test

import (
	"testing"

	"studio-booking/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()
	paymentID := "pay_123"

	tests := []struct {
		name   string
		amount int64
		kind   credit.Kind
		errIs  error
	}{
		{
			name:   "purchase with positive amount",
			amount: 5000,
			kind:   credit.KindPurchase,
		},
		{
			name:   "usage charge with negative amount",
			amount: -300,
			kind:   credit.KindUsageCharge,
		},
		{
			name:   "adjustment may be negative",
			amount: -100,
			kind:   credit.KindAdjustment,
		},
		{
			name:   "adjustment may be positive",
			amount: 100,
			kind:   credit.KindAdjustment,
		},
		{
			name:   "zero amount rejected",
			amount: 0,
			kind:   credit.KindPurchase,
			errIs:  credit.ErrZeroAmount,
		},
		{
			name:   "negative purchase rejected",
			amount: -5000,
			kind:   credit.KindPurchase,
			errIs:  credit.ErrKindSignBroken,
		},
		{
			name:   "positive usage charge rejected",
			amount: 300,
			kind:   credit.KindUsageCharge,
			errIs:  credit.ErrKindSignBroken,
		},
		{
			name:   "unknown kind rejected",
			amount: 100,
			kind:   credit.Kind("refund"),
			errIs:  credit.ErrInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := credit.NewTransaction(userID, tt.amount, tt.kind, &bookingID, &paymentID, "note")
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, tx.ID())
			assert.Equal(t, userID, tx.UserID())
			assert.Equal(t, tt.amount, tx.AmountCents())
			assert.Equal(t, tt.kind, tx.Kind())
			assert.Equal(t, "EUR", tx.Currency())
		})
	}
}
