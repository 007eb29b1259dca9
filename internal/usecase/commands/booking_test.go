//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gymgain/internal/domain/booking"
	"gymgain/internal/domain/user"
	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/pkg/clock"
	"gymgain/internal/usecase/commands"
	"gymgain/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory stand-in for the persistence layer, shared by
// the fake unit of work, its transaction, and the repositories.
type fakeStore struct {
	class     *booking.ClassSnapshot
	member    *shared.MemberSnapshot
	booked    map[string]int64
	bookings  map[int64]*shared.CancelTarget
	confirmed int32
	nextID    int64
	jobs      []string
}

func bookedKey(userID uuid.UUID, scheduleID int64, date time.Time) string {
	return fmt.Sprintf("%s|%d|%s", userID, scheduleID, date.Format(booking.DateLayout))
}

func (s *fakeStore) ClassByScheduleID(_ context.Context, scheduleID int64) (*booking.ClassSnapshot, error) {
	if s.class == nil || s.class.ScheduleID != scheduleID {
		return nil, infra.WrapRepoErr("class not found", nil, infra.KindNotFound)
	}
	cp := *s.class
	return &cp, nil
}

func (s *fakeStore) ConfirmedCount(_ context.Context, _ int64, _ time.Time) (int32, error) {
	return s.confirmed, nil
}

func (s *fakeStore) BookingExists(_ context.Context, userID uuid.UUID, scheduleID int64, date time.Time) (bool, error) {
	_, ok := s.booked[bookedKey(userID, scheduleID, date)]
	return ok, nil
}

func (s *fakeStore) MemberByID(_ context.Context, _ uuid.UUID) (*shared.MemberSnapshot, error) {
	cp := *s.member
	return &cp, nil
}

func (s *fakeStore) CredentialsByEmail(_ context.Context, _ string) (*shared.CredentialSnapshot, error) {
	return nil, infra.WrapRepoErr("credentials not found", nil, infra.KindNotFound)
}

type fakeBookingRepo struct{ s *fakeStore }

func (r fakeBookingRepo) ClassForUpdate(ctx context.Context, _ db.DBTX, scheduleID int64) (*booking.ClassSnapshot, error) {
	return r.s.ClassByScheduleID(ctx, scheduleID)
}

func (r fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (int64, error) {
	key := bookedKey(b.UserID(), b.ScheduleID(), b.BookingDate())
	if _, ok := r.s.booked[key]; ok {
		return 0, infra.WrapRepoErr("duplicate booking", nil, infra.KindDuplicateKey)
	}
	r.s.nextID++
	r.s.booked[key] = r.s.nextID
	r.s.confirmed++
	r.s.bookings[r.s.nextID] = &shared.CancelTarget{
		BookingID:    r.s.nextID,
		ActivityName: r.s.class.ActivityName,
		RefundAmount: r.s.class.Cost,
	}
	return r.s.nextID, nil
}

func (r fakeBookingRepo) FindForCancel(_ context.Context, _ db.DBTX, bookingID int64, _ uuid.UUID) (*shared.CancelTarget, error) {
	target, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	cp := *target
	return &cp, nil
}

func (r fakeBookingRepo) Delete(_ context.Context, _ db.DBTX, bookingID int64) error {
	if _, ok := r.s.bookings[bookingID]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.s.bookings, bookingID)
	r.s.confirmed--
	return nil
}

type fakeUserRepo struct{ s *fakeStore }

func (r fakeUserRepo) Create(_ context.Context, _ db.DBTX, _ *user.User) (uuid.UUID, error) {
	return uuid.Nil, infra.WrapRepoErr("not implemented", nil, infra.KindDBFailure)
}

func (r fakeUserRepo) MemberForUpdate(ctx context.Context, _ db.DBTX, id uuid.UUID) (*shared.MemberSnapshot, error) {
	return r.s.MemberByID(ctx, id)
}

func (r fakeUserRepo) Debit(_ context.Context, _ db.DBTX, _ uuid.UUID, amount int32) (int32, error) {
	if r.s.member.TokenBalance < amount {
		return 0, infra.WrapRepoErr("balance too low", nil, infra.KindCheckViolated)
	}
	r.s.member.TokenBalance -= amount
	return r.s.member.TokenBalance, nil
}

func (r fakeUserRepo) Credit(_ context.Context, _ db.DBTX, _ uuid.UUID, amount int32) (int32, error) {
	r.s.member.TokenBalance += amount
	return r.s.member.TokenBalance, nil
}

type fakeNotificationRepo struct{ s *fakeStore }

func (r fakeNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, kind, _ string, _ []byte, _ time.Time) error {
	r.s.jobs = append(r.s.jobs, kind)
	return nil
}

type fakeTx struct{ s *fakeStore }

func (t fakeTx) Bookings() shared.BookingRepository           { return fakeBookingRepo{s: t.s} }
func (t fakeTx) Users() shared.UserRepository                 { return fakeUserRepo{s: t.s} }
func (t fakeTx) Routines() shared.RoutineRepository           { return nil }
func (t fakeTx) Workouts() shared.WorkoutRepository           { return nil }
func (t fakeTx) Notifications() shared.NotificationRepository { return fakeNotificationRepo{s: t.s} }
func (t fakeTx) Reads() shared.CommandReads                   { return t.s }
func (t fakeTx) DB() db.DBTX                                  { return nil }

type fakeUoW struct{ s *fakeStore }

func (u fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, fakeTx{s: u.s})
}

func (u fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u fakeUoW) CommandReads() shared.CommandReads { return u.s }

func newStore() *fakeStore {
	return &fakeStore{
		class: &booking.ClassSnapshot{
			ScheduleID:   1,
			ActivityName: "Spin Class",
			Capacity:     2,
			Cost:         3,
			TierRequired: 1,
		},
		member: &shared.MemberSnapshot{
			ID:           uuid.New(),
			Username:     "alice",
			TokenBalance: 20,
			Tier:         user.TierBase,
		},
		booked:   map[string]int64{},
		bookings: map[int64]*shared.CancelTarget{},
	}
}

func newCommands(s *fakeStore) commands.BookingCommands {
	clk := clock.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	return commands.NewBookingCommands(fakeUoW{s: s}, clk)
}

func TestBookDebitsAndRecords(t *testing.T) {
	s := newStore()
	svc := newCommands(s)

	result, err := svc.Book(context.Background(), s.member.ID, 1, "2024-03-04")
	require.NoError(t, err)

	assert.Equal(t, "Spin Class", result.ActivityName)
	assert.Equal(t, int32(17), result.NewBalance)
	assert.Equal(t, int32(17), s.member.TokenBalance)
	assert.Equal(t, int32(1), s.confirmed)
	assert.Equal(t, []string{"booking_confirmed"}, s.jobs)
}

func TestBookRejectsInvalidDate(t *testing.T) {
	s := newStore()
	svc := newCommands(s)

	_, err := svc.Book(context.Background(), s.member.ID, 1, "not-a-date")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
	assert.Equal(t, int32(20), s.member.TokenBalance)
}

func TestBookRejectsUnknownClass(t *testing.T) {
	s := newStore()
	svc := newCommands(s)

	_, err := svc.Book(context.Background(), s.member.ID, 99, "2024-03-04")
	assert.ErrorIs(t, err, commands.ErrClassNotFound)
}

func TestBookRejectsDuplicate(t *testing.T) {
	s := newStore()
	svc := newCommands(s)

	_, err := svc.Book(context.Background(), s.member.ID, 1, "2024-03-04")
	require.NoError(t, err)

	_, err = svc.Book(context.Background(), s.member.ID, 1, "2024-03-04")
	assert.ErrorIs(t, err, booking.ErrAlreadyBooked)
	assert.Equal(t, int32(17), s.member.TokenBalance)
}

func TestBookRejectsFullClass(t *testing.T) {
	s := newStore()
	s.confirmed = 2
	svc := newCommands(s)

	_, err := svc.Book(context.Background(), s.member.ID, 1, "2024-03-04")
	assert.ErrorIs(t, err, booking.ErrClassFull)
	assert.Equal(t, int32(20), s.member.TokenBalance)
}

func TestBookRejectsInsufficientTokens(t *testing.T) {
	s := newStore()
	s.member.TokenBalance = 2
	svc := newCommands(s)

	_, err := svc.Book(context.Background(), s.member.ID, 1, "2024-03-04")
	assert.ErrorIs(t, err, booking.ErrInsufficientTokens)
	assert.Equal(t, int32(2), s.member.TokenBalance)
}

func TestBookRejectsLowTier(t *testing.T) {
	s := newStore()
	s.class.TierRequired = 3
	svc := newCommands(s)

	_, err := svc.Book(context.Background(), s.member.ID, 1, "2024-03-04")
	assert.ErrorIs(t, err, booking.ErrTierTooLow)
	assert.Equal(t, int32(20), s.member.TokenBalance)
}

func TestCancelRefunds(t *testing.T) {
	s := newStore()
	svc := newCommands(s)

	result, err := svc.Book(context.Background(), s.member.ID, 1, "2024-03-04")
	require.NoError(t, err)
	require.Equal(t, int32(17), result.NewBalance)

	cancelled, err := svc.Cancel(context.Background(), s.member.ID, result.BookingID)
	require.NoError(t, err)

	assert.Equal(t, "Spin Class", cancelled.ActivityName)
	assert.Equal(t, int32(3), cancelled.RefundAmount)
	assert.Equal(t, int32(20), cancelled.NewBalance)
	assert.Equal(t, int32(0), s.confirmed)
	assert.Equal(t, []string{"booking_confirmed", "booking_cancelled"}, s.jobs)
}

func TestCancelMissingBooking(t *testing.T) {
	s := newStore()
	svc := newCommands(s)

	_, err := svc.Cancel(context.Background(), s.member.ID, 42)
	assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	assert.Equal(t, int32(20), s.member.TokenBalance)
}
