package readstore

import (
	"context"
	"time"

	"gymgain/internal/domain/booking"
	"gymgain/internal/domain/user"
	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the booking engine's lookups. The same implementation
// runs against the pool (fast-path rejection) and against a transaction's
// connection (authoritative re-validation under lock).
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

func (r *CommandReads) ClassByScheduleID(ctx context.Context, scheduleID int64) (*booking.ClassSnapshot, error) {
	const query = `
		SELECT s.id, a.name, s.capacity, a.cost, a.tier_required
		FROM schedule s
		JOIN activities a ON a.id = s.activity_id
		WHERE s.id = $1`

	var snap booking.ClassSnapshot
	err := r.dbtx.QueryRow(ctx, query, scheduleID).Scan(
		&snap.ScheduleID,
		&snap.ActivityName,
		&snap.Capacity,
		&snap.Cost,
		&snap.TierRequired,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("class not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find class by schedule ID", err)
	}

	return &snap, nil
}

func (r *CommandReads) ConfirmedCount(ctx context.Context, scheduleID int64, bookingDate time.Time) (int32, error) {
	const query = `
		SELECT COUNT(*)
		FROM bookings
		WHERE schedule_id = $1 AND booking_date = $2 AND status = 'confirmed'`

	var count int32
	err := r.dbtx.QueryRow(ctx, query, scheduleID, bookingDate).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count confirmed bookings", err)
	}

	return count, nil
}

func (r *CommandReads) BookingExists(ctx context.Context, userID uuid.UUID, scheduleID int64, bookingDate time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND schedule_id = $2 AND booking_date = $3 AND status = 'confirmed'
		)`

	var exists bool
	err := r.dbtx.QueryRow(ctx, query, userID, scheduleID, bookingDate).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing booking", err)
	}

	return exists, nil
}

func (r *CommandReads) MemberByID(ctx context.Context, id uuid.UUID) (*shared.MemberSnapshot, error) {
	const query = `
		SELECT id, username, token_balance, membership_tier
		FROM users
		WHERE id = $1`

	var (
		snap shared.MemberSnapshot
		tier string
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Username, &snap.TokenBalance, &tier)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	snap.Tier = user.Tier(tier)

	return &snap, nil
}

func (r *CommandReads) CredentialsByEmail(ctx context.Context, email string) (*shared.CredentialSnapshot, error) {
	const query = `
		SELECT id, username, email, password_hash, token_balance, membership_tier
		FROM users
		WHERE email = $1`

	var (
		snap shared.CredentialSnapshot
		tier string
	)
	err := r.dbtx.QueryRow(ctx, query, email).Scan(
		&snap.ID,
		&snap.Username,
		&snap.Email,
		&snap.PasswordHash,
		&snap.TokenBalance,
		&tier,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	snap.Tier = user.Tier(tier)

	return &snap, nil
}
