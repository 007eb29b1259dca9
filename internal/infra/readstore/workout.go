package readstore

import (
	"context"

	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkoutReadStore struct {
	dbtx db.DBTX
}

func NewWorkoutReadStore(dbtx db.DBTX) *WorkoutReadStore {
	return &WorkoutReadStore{dbtx: dbtx}
}

func (r *WorkoutReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.WorkoutView, error) {
	const query = `
		SELECT id, workout_date, kind, notes
		FROM workouts
		WHERE user_id = $1
		ORDER BY workout_date DESC`

	rows, err := r.dbtx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list workouts", err)
	}
	defer rows.Close()

	var result []*queries.WorkoutView
	for rows.Next() {
		var view queries.WorkoutView
		if err := rows.Scan(&view.ID, &view.WorkoutDate, &view.Kind, &view.Notes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan workout", err)
		}
		result = append(result, &view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate workouts", rows.Err())
	}

	return result, nil
}
