package readstore

import (
	"context"
	"time"

	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/usecase/queries"
)

type ScheduleReadStore struct {
	dbtx db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{dbtx: dbtx}
}

// FindSlots lists the weekly schedule ordered by weekday then start time,
// optionally filtered by activity name.
func (r *ScheduleReadStore) FindSlots(ctx context.Context, search string) ([]*queries.ScheduleItemView, error) {
	const query = `
		SELECT s.id, s.day, to_char(s.start_time, 'HH24:MI'), s.capacity,
		       a.name, a.description, a.cost, a.tier_required
		FROM schedule s
		JOIN activities a ON a.id = s.activity_id
		WHERE ($1 = '' OR a.name ILIKE '%' || $1 || '%')
		ORDER BY array_position(
			ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'],
			s.day
		), s.start_time`

	rows, err := r.dbtx.Query(ctx, query, search)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule slots", err)
	}
	defer rows.Close()

	var result []*queries.ScheduleItemView
	for rows.Next() {
		var item queries.ScheduleItemView
		err := rows.Scan(
			&item.ScheduleID,
			&item.Day,
			&item.StartTime,
			&item.Capacity,
			&item.ActivityName,
			&item.Description,
			&item.Cost,
			&item.TierRequired,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule slot", err)
		}
		result = append(result, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate schedule slots", rows.Err())
	}

	return result, nil
}

// BookedCounts returns confirmed-booking counts per (slot, date) for the
// given occurrence dates.
func (r *ScheduleReadStore) BookedCounts(ctx context.Context, dates []time.Time) ([]queries.BookedCount, error) {
	const query = `
		SELECT schedule_id, booking_date, COUNT(*)
		FROM bookings
		WHERE booking_date = ANY($1) AND status = 'confirmed'
		GROUP BY schedule_id, booking_date`

	rows, err := r.dbtx.Query(ctx, query, dates)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch booked counts", err)
	}
	defer rows.Close()

	var result []queries.BookedCount
	for rows.Next() {
		var row queries.BookedCount
		if err := rows.Scan(&row.ScheduleID, &row.BookingDate, &row.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked count", err)
		}
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked counts", rows.Err())
	}

	return result, nil
}
