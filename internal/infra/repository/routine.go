package repository

import (
	"context"

	"gymgain/internal/domain/routine"
	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
)

type RoutineRepository struct{}

func NewRoutineRepository() *RoutineRepository {
	return &RoutineRepository{}
}

// Create inserts the routine followed by its exercises. The caller supplies a
// transaction; a failure on any child insert aborts the parent too.
func (r *RoutineRepository) Create(ctx context.Context, tx db.DBTX, rt *routine.Routine) (int64, error) {
	const routineQuery = `
		INSERT INTO routines (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id`

	var routineID int64
	err := tx.QueryRow(ctx, routineQuery, rt.UserID(), rt.Name(), rt.Description()).Scan(&routineID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create routine", err)
	}

	const exerciseQuery = `
		INSERT INTO routine_exercises (routine_id, exercise_id, exercise_name, sets, reps, order_index)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, ex := range rt.Exercises() {
		_, err := tx.Exec(ctx, exerciseQuery, routineID, ex.ExerciseID, ex.ExerciseName, ex.Sets, ex.Reps, ex.OrderIndex)
		if err != nil {
			return 0, infra.WrapRepoErr("failed to create routine exercise", err)
		}
	}

	return routineID, nil
}
