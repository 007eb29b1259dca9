package readstore

import (
	"context"

	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, a.name, s.day, to_char(s.start_time, 'HH24:MI'), b.booking_date, b.status
		FROM bookings b
		JOIN schedule s ON s.id = b.schedule_id
		JOIN activities a ON a.id = s.activity_id
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC, s.start_time ASC`

	rows, err := r.dbtx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(&item.ID, &item.ActivityName, &item.Day, &item.StartTime, &item.BookingDate, &item.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		result = append(result, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", rows.Err())
	}

	return result, nil
}

// SocialFeed lists confirmed bookings across all members, newest date first.
func (r *BookingReadStore) SocialFeed(ctx context.Context) ([]*queries.SocialFeedItem, error) {
	const query = `
		SELECT u.username, a.name, b.booking_date, s.day, to_char(s.start_time, 'HH24:MI')
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN schedule s ON s.id = b.schedule_id
		JOIN activities a ON a.id = s.activity_id
		WHERE b.status = 'confirmed'
		ORDER BY b.booking_date DESC, s.start_time ASC`

	rows, err := r.dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch social feed", err)
	}
	defer rows.Close()

	var result []*queries.SocialFeedItem
	for rows.Next() {
		var item queries.SocialFeedItem
		err := rows.Scan(&item.Username, &item.ActivityName, &item.BookingDate, &item.Day, &item.StartTime)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan social feed item", err)
		}
		result = append(result, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate social feed", rows.Err())
	}

	return result, nil
}
