package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read-side ports implemented by internal/infra/readstore.

type ScheduleReadStore interface {
	FindSlots(ctx context.Context, search string) ([]*ScheduleItemView, error)
	BookedCounts(ctx context.Context, dates []time.Time) ([]BookedCount, error)
}

type BookingReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	SocialFeed(ctx context.Context) ([]*SocialFeedItem, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type RoutineReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*RoutineView, error)
}

type WorkoutReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*WorkoutView, error)
}

// ExerciseSearcher looks up exercises in the external catalog.
type ExerciseSearcher interface {
	Search(ctx context.Context, term string) ([]ExerciseSuggestion, error)
}
