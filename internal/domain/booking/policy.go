package booking

import (
	"errors"
	"time"

	"gymgain/internal/domain/user"
)

var (
	ErrInvalidDate        = errors.New("invalid booking date")
	ErrAlreadyBooked      = errors.New("already booked")
	ErrClassFull          = errors.New("class full")
	ErrInsufficientTokens = errors.New("insufficient tokens")
	ErrTierTooLow         = errors.New("membership tier too low")
)

// DateLayout is the wire format for booking dates. Dates are compared as
// calendar days; no time zone conversion is applied.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ClassSnapshot is the schedule slot joined to its activity, as read from the
// store. Reference data only; the policy never mutates it.
type ClassSnapshot struct {
	ScheduleID   int64
	ActivityName string
	Capacity     int32
	Cost         int32
	TierRequired int16
}

// MemberState is the requesting user's balance and tier at decision time.
type MemberState struct {
	TokenBalance int32
	Tier         user.Tier
}

// Request carries everything the policy needs; it performs no I/O.
type Request struct {
	Class          ClassSnapshot
	Member         MemberState
	BookingDate    string
	AlreadyBooked  bool
	ConfirmedCount int32
}

// Decision is the accepted outcome, carrying the cost to debit.
type Decision struct {
	Date time.Time
	Cost int32
}

// Decide runs the acceptance checks in fixed order; the first failing check
// wins. The order is part of the user-facing contract:
//
//	1. well-formed booking date
//	2. no existing booking for (user, slot, date)
//	3. confirmed count below capacity
//	4. balance covers the activity cost
//	5. membership tier meets the activity requirement
func Decide(req Request) (Decision, error) {
	date, err := ParseDate(req.BookingDate)
	if err != nil {
		return Decision{}, err
	}

	if req.AlreadyBooked {
		return Decision{}, ErrAlreadyBooked
	}

	if req.ConfirmedCount >= req.Class.Capacity {
		return Decision{}, ErrClassFull
	}

	if req.Member.TokenBalance < req.Class.Cost {
		return Decision{}, ErrInsufficientTokens
	}

	if !req.Member.Tier.AtLeast(req.Class.TierRequired) {
		return Decision{}, ErrTierTooLow
	}

	return Decision{Date: date, Cost: req.Class.Cost}, nil
}
