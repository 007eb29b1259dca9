package commands

import (
	"context"

	"gymgain/internal/domain/routine"
	"gymgain/internal/pkg/errs"
	"gymgain/internal/usecase/shared"

	"github.com/google/uuid"
)

type SaveRoutineInput struct {
	Name        string
	Description string
	Exercises   []routine.Exercise
}

type RoutineCommands interface {
	// Save persists the routine and all its exercises atomically.
	Save(ctx context.Context, userID uuid.UUID, input SaveRoutineInput) (int64, error)
}

type routineCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoutineCommands(uow shared.UnitOfWork) RoutineCommands {
	return &routineCommandsImpl{uow: uow}
}

func (c *routineCommandsImpl) Save(ctx context.Context, userID uuid.UUID, input SaveRoutineInput) (int64, error) {
	r, err := routine.NewRoutine(userID, input.Name, input.Description, input.Exercises)
	if err != nil {
		return 0, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Routines().Create(ctx, tx.DB(), r)
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
