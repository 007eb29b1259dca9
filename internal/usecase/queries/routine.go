package queries

import (
	"context"
	"strings"

	"gymgain/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoutineQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*RoutineView, error)
	SearchExercises(ctx context.Context, term string) ([]ExerciseSuggestion, error)
}

type routineQueriesImpl struct {
	store    RoutineReadStore
	searcher ExerciseSearcher
}

func NewRoutineQueries(store RoutineReadStore, searcher ExerciseSearcher) RoutineQueries {
	return &routineQueriesImpl{store: store, searcher: searcher}
}

func (q *routineQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*RoutineView, error) {
	routines, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list routines")
	}
	return routines, nil
}

func (q *routineQueriesImpl) SearchExercises(ctx context.Context, term string) ([]ExerciseSuggestion, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []ExerciseSuggestion{}, nil
	}
	suggestions, err := q.searcher.Search(ctx, term)
	if err != nil {
		return nil, errs.Wrap(err, "exercise search failed")
	}
	return suggestions, nil
}
