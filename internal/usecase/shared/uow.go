package shared

import (
	"context"
	"time"

	"gymgain/internal/domain/booking"
	"gymgain/internal/domain/routine"
	"gymgain/internal/domain/user"
	"gymgain/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures; every exit path rolls back or commits and
	// returns the connection to the pool.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Users() UserRepository
	Routines() RoutineRepository
	Workouts() WorkoutRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the lookups the command side needs before and inside
// transactions. Bound to the pool outside a transaction and to the
// transaction's connection inside one.
type CommandReads interface {
	ClassByScheduleID(ctx context.Context, scheduleID int64) (*booking.ClassSnapshot, error)
	ConfirmedCount(ctx context.Context, scheduleID int64, bookingDate time.Time) (int32, error)
	BookingExists(ctx context.Context, userID uuid.UUID, scheduleID int64, bookingDate time.Time) (bool, error)
	MemberByID(ctx context.Context, id uuid.UUID) (*MemberSnapshot, error)
	CredentialsByEmail(ctx context.Context, email string) (*CredentialSnapshot, error)
}

type BookingRepository interface {
	// ClassForUpdate locks the schedule row, serializing capacity decisions
	// for one slot across concurrent transactions.
	ClassForUpdate(ctx context.Context, tx db.DBTX, scheduleID int64) (*booking.ClassSnapshot, error)
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error)
	// FindForCancel returns the booking and its refund amount, constrained to
	// the owner, locking the row until the transaction ends.
	FindForCancel(ctx context.Context, tx db.DBTX, bookingID int64, userID uuid.UUID) (*CancelTarget, error)
	Delete(ctx context.Context, tx db.DBTX, bookingID int64) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	MemberForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*MemberSnapshot, error)
	// Debit subtracts amount only when the balance covers it; reports
	// CHECK_VIOLATED otherwise. Balance can never go negative.
	Debit(ctx context.Context, tx db.DBTX, id uuid.UUID, amount int32) (newBalance int32, err error)
	Credit(ctx context.Context, tx db.DBTX, id uuid.UUID, amount int32) (newBalance int32, err error)
}

type RoutineRepository interface {
	// Create inserts the routine and its exercises; parent and children
	// belong to the same transaction.
	Create(ctx context.Context, tx db.DBTX, r *routine.Routine) (int64, error)
}

type WorkoutRepository interface {
	Create(ctx context.Context, tx db.DBTX, w WorkoutRecord) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type MemberSnapshot struct {
	ID           uuid.UUID
	Username     string
	TokenBalance int32
	Tier         user.Tier
}

type CredentialSnapshot struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	TokenBalance int32
	Tier         user.Tier
}

type CancelTarget struct {
	BookingID    int64
	ActivityName string
	RefundAmount int32
}

type WorkoutRecord struct {
	UserID      uuid.UUID
	WorkoutDate time.Time
	Kind        string
	Notes       string
}
