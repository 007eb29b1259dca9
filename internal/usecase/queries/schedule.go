package queries

import (
	"context"
	"fmt"
	"time"

	"gymgain/internal/domain/booking"
	"gymgain/internal/pkg/clock"
	"gymgain/internal/pkg/errs"
)

type ScheduleQueries interface {
	WeeklySchedule(ctx context.Context, search string) ([]*ScheduleItemView, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
	clock clock.Clock
}

func NewScheduleQueries(store ScheduleReadStore, clk clock.Clock) ScheduleQueries {
	return &scheduleQueriesImpl{store: store, clock: clk}
}

// WeeklySchedule resolves each slot's next occurrence date within the
// upcoming seven days (today inclusive) and attaches confirmed-booking
// counts for those dates.
func (q *scheduleQueriesImpl) WeeklySchedule(ctx context.Context, search string) ([]*ScheduleItemView, error) {
	slots, err := q.store.FindSlots(ctx, search)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load schedule slots")
	}

	dates := nextWeekDates(q.clock.Now())
	dateList := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		dateList = append(dateList, d)
	}

	counts, err := q.store.BookedCounts(ctx, dateList)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booked counts")
	}
	countBySlotDate := make(map[string]int32, len(counts))
	for _, c := range counts {
		countBySlotDate[slotDateKey(c.ScheduleID, c.BookingDate)] = c.Count
	}

	for _, slot := range slots {
		date, ok := dates[slot.Day]
		if !ok {
			continue
		}
		slot.BookingDate = date.Format(booking.DateLayout)
		slot.BookedCount = countBySlotDate[slotDateKey(slot.ScheduleID, date)]
	}

	return slots, nil
}

// nextWeekDates maps weekday names to their next occurrence starting today.
func nextWeekDates(now time.Time) map[string]time.Time {
	dates := make(map[string]time.Time, 7)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		d := today.AddDate(0, 0, i)
		dates[d.Weekday().String()] = d
	}
	return dates
}

func slotDateKey(scheduleID int64, date time.Time) string {
	return fmt.Sprintf("%d:%s", scheduleID, date.Format(booking.DateLayout))
}
