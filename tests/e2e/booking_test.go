//go:build e2e

package e2e

import (
	"context"
	"sync"
	"testing"

	"gymgain/internal/domain/booking"
	"gymgain/internal/infra/uow"
	"gymgain/internal/pkg/clock"
	"gymgain/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingEngineSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	commands commands.BookingCommands
}

func TestBookingEngineSuite(t *testing.T) {
	suite.Run(t, new(BookingEngineSuite))
}

func (s *BookingEngineSuite) SetupSuite() {
	s.pool = setupTestDatabase(s.T())
	s.commands = commands.NewBookingCommands(uow.NewPostgresUoW(s.pool), clock.NewRealClock())
}

func (s *BookingEngineSuite) seedMember(balance int32, tier string) uuid.UUID {
	id := uuid.New()
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO users (id, username, email, password_hash, token_balance, membership_tier)
		VALUES ($1, $2, $3, 'x', $4, $5)`,
		id, "member_"+id.String()[:8], id.String()[:8]+"@example.com", balance, tier)
	require.NoError(s.T(), err)
	return id
}

func (s *BookingEngineSuite) seedClass(cost, capacity int32, tierRequired int16) int64 {
	ctx := context.Background()

	var activityID int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO activities (name, description, cost, tier_required)
		VALUES ('Spin Class', 'cardio', $1, $2)
		RETURNING id`, cost, tierRequired).Scan(&activityID)
	require.NoError(s.T(), err)

	var scheduleID int64
	err = s.pool.QueryRow(ctx, `
		INSERT INTO schedule (activity_id, day, start_time, capacity)
		VALUES ($1, 'Monday', '09:00', $2)
		RETURNING id`, activityID, capacity).Scan(&scheduleID)
	require.NoError(s.T(), err)

	return scheduleID
}

func (s *BookingEngineSuite) balanceOf(id uuid.UUID) int32 {
	var balance int32
	err := s.pool.QueryRow(context.Background(),
		`SELECT token_balance FROM users WHERE id = $1`, id).Scan(&balance)
	require.NoError(s.T(), err)
	return balance
}

func (s *BookingEngineSuite) confirmedCount(scheduleID int64, date string) int32 {
	var count int32
	err := s.pool.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM bookings
		WHERE schedule_id = $1 AND booking_date = $2 AND status = 'confirmed'`,
		scheduleID, date).Scan(&count)
	require.NoError(s.T(), err)
	return count
}

// Capacity C under concurrent load: exactly C bookings commit, never more,
// and only the winners are debited.
func (s *BookingEngineSuite) TestConcurrentBookingNeverOverbooks() {
	const (
		capacity = 3
		members  = 10
		cost     = 5
		date     = "2030-01-07"
	)

	scheduleID := s.seedClass(cost, capacity, 1)

	ids := make([]uuid.UUID, members)
	for i := range ids {
		ids[i] = s.seedMember(20, "base")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		failures  []error
	)
	for _, id := range ids {
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()
			_, err := s.commands.Book(context.Background(), userID, scheduleID, date)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			succeeded++
		}(id)
	}
	wg.Wait()

	s.Equal(capacity, succeeded)
	s.Len(failures, members-capacity)
	for _, err := range failures {
		s.ErrorIs(err, booking.ErrClassFull)
	}
	s.Equal(int32(capacity), s.confirmedCount(scheduleID, date))

	debited := 0
	for _, id := range ids {
		switch s.balanceOf(id) {
		case 20 - cost:
			debited++
		case 20:
		default:
			s.Failf("unexpected balance", "member %s", id)
		}
	}
	s.Equal(capacity, debited)
}

func (s *BookingEngineSuite) TestBookCancelRoundTripRestoresBalance() {
	const date = "2030-01-07"
	scheduleID := s.seedClass(4, 10, 1)
	memberID := s.seedMember(20, "base")

	result, err := s.commands.Book(context.Background(), memberID, scheduleID, date)
	s.Require().NoError(err)
	s.Equal(int32(16), result.NewBalance)
	s.Equal(int32(16), s.balanceOf(memberID))

	cancelled, err := s.commands.Cancel(context.Background(), memberID, result.BookingID)
	s.Require().NoError(err)
	s.Equal(int32(20), cancelled.NewBalance)
	s.Equal(int32(20), s.balanceOf(memberID))
	s.Equal(int32(0), s.confirmedCount(scheduleID, date))
}

func (s *BookingEngineSuite) TestDuplicateBookingRejectedOnce() {
	const date = "2030-01-07"
	scheduleID := s.seedClass(3, 10, 1)
	memberID := s.seedMember(20, "base")

	_, err := s.commands.Book(context.Background(), memberID, scheduleID, date)
	s.Require().NoError(err)

	_, err = s.commands.Book(context.Background(), memberID, scheduleID, date)
	s.ErrorIs(err, booking.ErrAlreadyBooked)

	// Debited exactly once.
	s.Equal(int32(17), s.balanceOf(memberID))
	s.Equal(int32(1), s.confirmedCount(scheduleID, date))
}

func (s *BookingEngineSuite) TestCancelMissingBookingIsNoOp() {
	memberID := s.seedMember(20, "base")

	_, err := s.commands.Cancel(context.Background(), memberID, 999999)
	s.ErrorIs(err, commands.ErrBookingNotFound)
	s.Equal(int32(20), s.balanceOf(memberID))
}

func (s *BookingEngineSuite) TestCancelForeignBookingIsRejected() {
	const date = "2030-01-07"
	scheduleID := s.seedClass(3, 10, 1)
	owner := s.seedMember(20, "base")
	other := s.seedMember(20, "base")

	result, err := s.commands.Book(context.Background(), owner, scheduleID, date)
	s.Require().NoError(err)

	_, err = s.commands.Cancel(context.Background(), other, result.BookingID)
	s.ErrorIs(err, commands.ErrBookingNotFound)

	// The owner's booking and debit are untouched.
	s.Equal(int32(1), s.confirmedCount(scheduleID, date))
	s.Equal(int32(17), s.balanceOf(owner))
	s.Equal(int32(20), s.balanceOf(other))
}

func (s *BookingEngineSuite) TestTierGateAgainstStoredTier() {
	const date = "2030-01-07"
	scheduleID := s.seedClass(3, 10, 3) // gold only
	memberID := s.seedMember(20, "silver")

	_, err := s.commands.Book(context.Background(), memberID, scheduleID, date)
	s.ErrorIs(err, booking.ErrTierTooLow)
	s.Equal(int32(20), s.balanceOf(memberID))
}
