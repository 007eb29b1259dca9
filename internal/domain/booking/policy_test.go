//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gymgain/internal/domain/booking"
	"gymgain/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() booking.Request {
	return booking.Request{
		Class: booking.ClassSnapshot{
			ScheduleID:   1,
			ActivityName: "Yoga",
			Capacity:     10,
			Cost:         5,
			TierRequired: 1,
		},
		Member: booking.MemberState{
			TokenBalance: 20,
			Tier:         user.TierBase,
		},
		BookingDate:    "2026-09-07",
		AlreadyBooked:  false,
		ConfirmedCount: 0,
	}
}

func TestDecideAccepts(t *testing.T) {
	decision, err := booking.Decide(baseRequest())
	require.NoError(t, err)

	assert.EqualValues(t, 5, decision.Cost)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), decision.Date)
}

func TestDecideChecksInOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*booking.Request)
		errIs  error
	}{
		{
			name:   "missing date",
			mutate: func(r *booking.Request) { r.BookingDate = "" },
			errIs:  booking.ErrInvalidDate,
		},
		{
			name:   "malformed date",
			mutate: func(r *booking.Request) { r.BookingDate = "07/09/2026" },
			errIs:  booking.ErrInvalidDate,
		},
		{
			name:   "duplicate booking",
			mutate: func(r *booking.Request) { r.AlreadyBooked = true },
			errIs:  booking.ErrAlreadyBooked,
		},
		{
			name:   "at capacity",
			mutate: func(r *booking.Request) { r.ConfirmedCount = 10 },
			errIs:  booking.ErrClassFull,
		},
		{
			name:   "over capacity",
			mutate: func(r *booking.Request) { r.ConfirmedCount = 11 },
			errIs:  booking.ErrClassFull,
		},
		{
			name:   "cannot afford",
			mutate: func(r *booking.Request) { r.Member.TokenBalance = 4 },
			errIs:  booking.ErrInsufficientTokens,
		},
		{
			name: "tier below requirement",
			mutate: func(r *booking.Request) {
				r.Class.TierRequired = 2
				r.Member.Tier = user.TierBase
			},
			errIs: booking.ErrTierTooLow,
		},
		{
			name: "exact balance is enough",
			mutate: func(r *booking.Request) {
				r.Member.TokenBalance = 5
			},
		},
		{
			name: "last seat is bookable",
			mutate: func(r *booking.Request) {
				r.ConfirmedCount = 9
			},
		},
		{
			name: "gold covers silver requirement",
			mutate: func(r *booking.Request) {
				r.Class.TierRequired = 2
				r.Member.Tier = user.TierGold
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			tc.mutate(&req)

			_, err := booking.Decide(req)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// A member who is both short on tokens and below the tier requirement must be
// told about the tokens: the balance check fires before the tier check.
func TestDecideBalanceBeforeTier(t *testing.T) {
	req := baseRequest()
	req.Class.Cost = 5
	req.Class.TierRequired = 2
	req.Member.TokenBalance = 3
	req.Member.Tier = user.TierBase

	_, err := booking.Decide(req)
	assert.ErrorIs(t, err, booking.ErrInsufficientTokens)
}

// Duplicate wins over every later check, including capacity.
func TestDecideDuplicateBeforeCapacity(t *testing.T) {
	req := baseRequest()
	req.AlreadyBooked = true
	req.ConfirmedCount = 10

	_, err := booking.Decide(req)
	assert.ErrorIs(t, err, booking.ErrAlreadyBooked)
}

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate("2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = booking.ParseDate("2026-13-01")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
	_, err = booking.ParseDate("")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
}
