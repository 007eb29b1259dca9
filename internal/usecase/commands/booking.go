package commands

import (
	"context"
	"encoding/json"
	"time"

	"gymgain/internal/domain/booking"
	"gymgain/internal/infra"
	"gymgain/internal/pkg/clock"
	"gymgain/internal/pkg/errs"
	"gymgain/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrClassNotFound           = errs.New("class not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookResult struct {
	BookingID    int64
	ActivityName string
	NewBalance   int32
}

type CancelResult struct {
	ActivityName string
	RefundAmount int32
	NewBalance   int32
}

type BookingCommands interface {
	Book(ctx context.Context, userID uuid.UUID, scheduleID int64, bookingDate string) (*BookResult, error)
	Cancel(ctx context.Context, userID uuid.UUID, bookingID int64) (*CancelResult, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

// Book reserves a seat in a class occurrence and debits the member's tokens.
//
// Acceptance is checked twice: once against pool reads to reject obviously
// bad requests without opening a transaction, and again inside the
// transaction after locking the schedule row, where the duplicate check,
// seat count, and debit are authoritative. The slot lock is always taken
// before the member row lock so concurrent transactions cannot deadlock.
func (c *bookingCommandsImpl) Book(ctx context.Context, userID uuid.UUID, scheduleID int64, bookingDate string) (*BookResult, error) {
	reads := c.uow.CommandReads()

	class, err := reads.ClassByScheduleID(ctx, scheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClassNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	member, err := reads.MemberByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	decision, err := c.decide(ctx, reads, class, member, userID, bookingDate)
	if err != nil {
		return nil, err
	}

	var result BookResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lockedClass, err := tx.Bookings().ClassForUpdate(ctx, tx.DB(), scheduleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrClassNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		lockedMember, err := tx.Users().MemberForUpdate(ctx, tx.DB(), userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		decision, err = c.decide(ctx, tx.Reads(), lockedClass, lockedMember, userID, bookingDate)
		if err != nil {
			return err
		}

		b := booking.NewBooking(userID, scheduleID, decision.Date)
		bookingID, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			// The unique constraint closes the window between the duplicate
			// check and the insert.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, booking.ErrAlreadyBooked)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		newBalance := lockedMember.TokenBalance
		if decision.Cost > 0 {
			newBalance, err = tx.Users().Debit(ctx, tx.DB(), userID, decision.Cost)
			if err != nil {
				if infra.IsKind(err, infra.KindCheckViolated) {
					return errs.Mark(err, booking.ErrInsufficientTokens)
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := c.enqueueBookingJob(ctx, tx, "booking_confirmed", userID, lockedClass.ActivityName, decision.Date); err != nil {
			return err
		}

		result = BookResult{
			BookingID:    bookingID,
			ActivityName: lockedClass.ActivityName,
			NewBalance:   newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Cancel deletes the member's booking and refunds the activity cost.
// Cancelling a booking that does not exist (or belongs to someone else)
// reports ErrBookingNotFound and changes nothing.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, userID uuid.UUID, bookingID int64) (*CancelResult, error) {
	var result CancelResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		target, err := tx.Bookings().FindForCancel(ctx, tx.DB(), bookingID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().Delete(ctx, tx.DB(), target.BookingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		newBalance, err := tx.Users().Credit(ctx, tx.DB(), userID, target.RefundAmount)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.enqueueBookingJob(ctx, tx, "booking_cancelled", userID, target.ActivityName, time.Time{}); err != nil {
			return err
		}

		result = CancelResult{
			ActivityName: target.ActivityName,
			RefundAmount: target.RefundAmount,
			NewBalance:   newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// decide runs the acceptance policy against the given reads. The check order
// is user-facing; see booking.Decide.
func (c *bookingCommandsImpl) decide(
	ctx context.Context,
	reads shared.CommandReads,
	class *booking.ClassSnapshot,
	member *shared.MemberSnapshot,
	userID uuid.UUID,
	bookingDate string,
) (booking.Decision, error) {
	date, err := booking.ParseDate(bookingDate)
	if err != nil {
		return booking.Decision{}, err
	}

	alreadyBooked, err := reads.BookingExists(ctx, userID, class.ScheduleID, date)
	if err != nil {
		return booking.Decision{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	confirmed, err := reads.ConfirmedCount(ctx, class.ScheduleID, date)
	if err != nil {
		return booking.Decision{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return booking.Decide(booking.Request{
		Class:          *class,
		Member:         booking.MemberState{TokenBalance: member.TokenBalance, Tier: member.Tier},
		BookingDate:    bookingDate,
		AlreadyBooked:  alreadyBooked,
		ConfirmedCount: confirmed,
	})
}

func (c *bookingCommandsImpl) enqueueBookingJob(ctx context.Context, tx shared.Tx, kind string, userID uuid.UUID, activityName string, date time.Time) error {
	payload := map[string]any{
		"user_id":  userID.String(),
		"activity": activityName,
	}
	if !date.IsZero() {
		payload["booking_date"] = date.Format(booking.DateLayout)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}

	if err := tx.Notifications().CreateJob(ctx, tx.DB(), kind, "bookings", body, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
