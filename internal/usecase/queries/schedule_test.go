//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gymgain/internal/pkg/clock"
	"gymgain/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleStore struct {
	slots  []*queries.ScheduleItemView
	counts []queries.BookedCount

	gotDates []time.Time
}

func (s *fakeScheduleStore) FindSlots(_ context.Context, _ string) ([]*queries.ScheduleItemView, error) {
	return s.slots, nil
}

func (s *fakeScheduleStore) BookedCounts(_ context.Context, dates []time.Time) ([]queries.BookedCount, error) {
	s.gotDates = dates
	return s.counts, nil
}

func TestWeeklyScheduleResolvesNextOccurrences(t *testing.T) {
	// Friday 2024-03-01.
	clk := clock.NewMockClock(time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC))

	store := &fakeScheduleStore{
		slots: []*queries.ScheduleItemView{
			{ScheduleID: 1, Day: "Friday", ActivityName: "Spin Class", Capacity: 10},
			{ScheduleID: 2, Day: "Monday", ActivityName: "Yoga", Capacity: 15},
		},
		counts: []queries.BookedCount{
			{ScheduleID: 1, BookingDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Count: 7},
		},
	}

	items, err := queries.NewScheduleQueries(store, clk).WeeklySchedule(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Friday resolves to today, Monday to the coming Monday.
	assert.Equal(t, "2024-03-01", items[0].BookingDate)
	assert.Equal(t, int32(7), items[0].BookedCount)
	assert.Equal(t, "2024-03-04", items[1].BookingDate)
	assert.Equal(t, int32(0), items[1].BookedCount)

	assert.Len(t, store.gotDates, 7)
}
