//go:build unit

package offertoken_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/offertoken"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "offer-secret-for-tests"
	testValidity = 15 * time.Minute
)

func testSlot(t *testing.T) booking.TimeSlot {
	t.Helper()
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(start, start.Add(30*time.Minute))
	require.NoError(t, err)
	return slot
}

func TestSignAndVerify(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC))
	signer := offertoken.NewSigner(testSecret, testValidity, clk)

	unitID := uuid.New()
	slot := testSlot(t)

	offer, err := signer.Sign(unitID, slot, 600)
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(testValidity), offer.ExpiresAt)
	assert.NotEmpty(t, offer.Signature)

	assert.NoError(t, signer.Verify(offer.Signature, unitID, slot, 600))
}

func TestVerifyRejectsTamperedFields(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC))
	signer := offertoken.NewSigner(testSecret, testValidity, clk)

	unitID := uuid.New()
	slot := testSlot(t)
	offer, err := signer.Sign(unitID, slot, 600)
	require.NoError(t, err)

	otherSlot, err := booking.NewTimeSlot(slot.Start().Add(30*time.Minute), slot.End().Add(30*time.Minute))
	require.NoError(t, err)
	shiftedEnd, err := booking.NewTimeSlot(slot.Start(), slot.End().Add(30*time.Minute))
	require.NoError(t, err)

	tests := []struct {
		name   string
		unitID uuid.UUID
		slot   booking.TimeSlot
		price  int64
		errIs  error
	}{
		{
			name:   "different unit",
			unitID: uuid.New(),
			slot:   slot,
			price:  600,
			errIs:  offertoken.ErrOfferMismatch,
		},
		{
			name:   "shifted slot",
			unitID: unitID,
			slot:   otherSlot,
			price:  600,
			errIs:  offertoken.ErrOfferMismatch,
		},
		{
			name:   "stretched end",
			unitID: unitID,
			slot:   shiftedEnd,
			price:  600,
			errIs:  offertoken.ErrOfferMismatch,
		},
		{
			name:   "lowered price",
			unitID: unitID,
			slot:   slot,
			price:  1,
			errIs:  offertoken.ErrOfferMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := signer.Verify(offer.Signature, tt.unitID, tt.slot, tt.price)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestVerifyRejectsForgedSignature(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC))
	signer := offertoken.NewSigner(testSecret, testValidity, clk)
	forger := offertoken.NewSigner("some-other-secret", testValidity, clk)

	unitID := uuid.New()
	slot := testSlot(t)

	forged, err := forger.Sign(unitID, slot, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, signer.Verify(forged.Signature, unitID, slot, 1), offertoken.ErrInvalidOffer)
	assert.ErrorIs(t, signer.Verify("not-a-token", unitID, slot, 600), offertoken.ErrInvalidOffer)
}

func TestVerifyExpiry(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC))
	signer := offertoken.NewSigner(testSecret, testValidity, clk)

	unitID := uuid.New()
	slot := testSlot(t)
	offer, err := signer.Sign(unitID, slot, 600)
	require.NoError(t, err)

	clk.Add(14 * time.Minute)
	assert.NoError(t, signer.Verify(offer.Signature, unitID, slot, 600),
		"offer is redeemable right up to its expiry")

	clk.Add(2 * time.Minute)
	assert.ErrorIs(t, signer.Verify(offer.Signature, unitID, slot, 600), offertoken.ErrExpiredOffer)
}
