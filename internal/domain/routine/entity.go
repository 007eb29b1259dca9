package routine

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired     = errors.New("routine name is required")
	ErrTooManyExercises = errors.New("too many exercises in routine")
)

const maxExercises = 50

// Exercise is one ordered entry in a routine. ExerciseID refers to the
// external exercise catalog and may be zero for free-text entries.
type Exercise struct {
	ExerciseID   int64
	ExerciseName string
	Sets         int32
	Reps         int32
	OrderIndex   int32
}

type Routine struct {
	id          int64
	userID      uuid.UUID
	name        string
	description string
	exercises   []Exercise
	createdAt   time.Time
}

func NewRoutine(userID uuid.UUID, name, description string, exercises []Exercise) (*Routine, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(exercises) > maxExercises {
		return nil, ErrTooManyExercises
	}

	ordered := make([]Exercise, len(exercises))
	for i, ex := range exercises {
		ex.OrderIndex = int32(i)
		if ex.Sets <= 0 {
			ex.Sets = 3
		}
		if ex.Reps <= 0 {
			ex.Reps = 10
		}
		ordered[i] = ex
	}

	return &Routine{
		userID:      userID,
		name:        name,
		description: description,
		exercises:   ordered,
	}, nil
}

func ReconstructRoutine(id int64, userID uuid.UUID, name, description string, exercises []Exercise, createdAt time.Time) *Routine {
	return &Routine{
		id:          id,
		userID:      userID,
		name:        name,
		description: description,
		exercises:   exercises,
		createdAt:   createdAt,
	}
}

func (r *Routine) ID() int64            { return r.id }
func (r *Routine) UserID() uuid.UUID    { return r.userID }
func (r *Routine) Name() string         { return r.name }
func (r *Routine) Description() string  { return r.description }
func (r *Routine) Exercises() []Exercise { return r.exercises }
func (r *Routine) CreatedAt() time.Time { return r.createdAt }
