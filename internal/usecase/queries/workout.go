package queries

import (
	"context"

	"gymgain/internal/pkg/errs"

	"github.com/google/uuid"
)

type WorkoutQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*WorkoutView, error)
}

type workoutQueriesImpl struct {
	store WorkoutReadStore
}

func NewWorkoutQueries(store WorkoutReadStore) WorkoutQueries {
	return &workoutQueriesImpl{store: store}
}

func (q *workoutQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*WorkoutView, error) {
	workouts, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list workouts")
	}
	return workouts, nil
}
