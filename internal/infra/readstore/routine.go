package readstore

import (
	"context"

	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoutineReadStore struct {
	dbtx db.DBTX
}

func NewRoutineReadStore(dbtx db.DBTX) *RoutineReadStore {
	return &RoutineReadStore{dbtx: dbtx}
}

func (r *RoutineReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.RoutineView, error) {
	const routineQuery = `
		SELECT id, name, description, created_at
		FROM routines
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.dbtx.Query(ctx, routineQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list routines", err)
	}
	defer rows.Close()

	var (
		result []*queries.RoutineView
		ids    []int64
		byID   = map[int64]*queries.RoutineView{}
	)
	for rows.Next() {
		var view queries.RoutineView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan routine", err)
		}
		view.Exercises = []queries.RoutineExerciseView{}
		result = append(result, &view)
		ids = append(ids, view.ID)
		byID[view.ID] = &view
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate routines", rows.Err())
	}

	if len(ids) == 0 {
		return result, nil
	}

	const exerciseQuery = `
		SELECT routine_id, exercise_id, exercise_name, sets, reps, order_index
		FROM routine_exercises
		WHERE routine_id = ANY($1)
		ORDER BY routine_id, order_index`

	exRows, err := r.dbtx.Query(ctx, exerciseQuery, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list routine exercises", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var (
			routineID int64
			ex        queries.RoutineExerciseView
		)
		if err := exRows.Scan(&routineID, &ex.ExerciseID, &ex.ExerciseName, &ex.Sets, &ex.Reps, &ex.OrderIndex); err != nil {
			return nil, infra.WrapRepoErr("failed to scan routine exercise", err)
		}
		if view, ok := byID[routineID]; ok {
			view.Exercises = append(view.Exercises, ex)
		}
	}
	if exRows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate routine exercises", exRows.Err())
	}

	return result, nil
}
