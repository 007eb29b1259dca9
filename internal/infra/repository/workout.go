package repository

import (
	"context"

	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/usecase/shared"
)

type WorkoutRepository struct{}

func NewWorkoutRepository() *WorkoutRepository {
	return &WorkoutRepository{}
}

func (r *WorkoutRepository) Create(ctx context.Context, tx db.DBTX, w shared.WorkoutRecord) (int64, error) {
	const query = `
		INSERT INTO workouts (user_id, workout_date, kind, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query, w.UserID, w.WorkoutDate, w.Kind, w.Notes).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create workout", err)
	}

	return id, nil
}
