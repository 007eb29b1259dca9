package repository

import (
	"context"

	"gymgain/internal/domain/booking"
	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// ClassForUpdate locks only the schedule row (FOR UPDATE OF s); the joined
// activity row is reference data and stays unlocked.
func (r *BookingRepository) ClassForUpdate(ctx context.Context, tx db.DBTX, scheduleID int64) (*booking.ClassSnapshot, error) {
	const query = `
		SELECT s.id, a.name, s.capacity, a.cost, a.tier_required
		FROM schedule s
		JOIN activities a ON a.id = s.activity_id
		WHERE s.id = $1
		FOR UPDATE OF s`

	var snap booking.ClassSnapshot
	err := tx.QueryRow(ctx, query, scheduleID).Scan(
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
		return nil, infra.WrapRepoErr("failed to lock schedule slot", err)
	}

	return &snap, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error) {
	const query = `
		INSERT INTO bookings (user_id, schedule_id, booking_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query, b.UserID(), b.ScheduleID(), b.BookingDate(), string(b.Status())).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindForCancel(ctx context.Context, tx db.DBTX, bookingID int64, userID uuid.UUID) (*shared.CancelTarget, error) {
	const query = `
		SELECT b.id, a.name, a.cost
		FROM bookings b
		JOIN schedule s ON s.id = b.schedule_id
		JOIN activities a ON a.id = s.activity_id
		WHERE b.id = $1 AND b.user_id = $2
		FOR UPDATE OF b`

	var target shared.CancelTarget
	err := tx.QueryRow(ctx, query, bookingID, userID).Scan(
		&target.BookingID,
		&target.ActivityName,
		&target.RefundAmount,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for cancellation", err)
	}

	return &target, nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, bookingID int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking already deleted", nil, infra.KindNotFound)
	}

	return nil
}
