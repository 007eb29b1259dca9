package commands

import (
	"context"

	"gymgain/internal/domain/booking"
	"gymgain/internal/pkg/errs"
	"gymgain/internal/usecase/shared"

	"github.com/google/uuid"
)

type LogWorkoutInput struct {
	WorkoutDate string
	Kind        string
	Notes       string
}

type WorkoutCommands interface {
	Log(ctx context.Context, userID uuid.UUID, input LogWorkoutInput) (int64, error)
}

type workoutCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewWorkoutCommands(uow shared.UnitOfWork) WorkoutCommands {
	return &workoutCommandsImpl{uow: uow}
}

func (c *workoutCommandsImpl) Log(ctx context.Context, userID uuid.UUID, input LogWorkoutInput) (int64, error) {
	date, err := booking.ParseDate(input.WorkoutDate)
	if err != nil {
		return 0, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Workouts().Create(ctx, tx.DB(), shared.WorkoutRecord{
			UserID:      userID,
			WorkoutDate: date,
			Kind:        input.Kind,
			Notes:       input.Notes,
		})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
