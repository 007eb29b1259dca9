package response

import (
	"time"

	"gymgain/internal/infra/session"
	"gymgain/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoutineExerciseResponse struct {
	ExerciseID   int64  `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Sets         int32  `json:"sets"`
	Reps         int32  `json:"reps"`
	OrderIndex   int32  `json:"orderIndex"`
}

type RoutineResponse struct {
	ID          int64                     `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Exercises   []RoutineExerciseResponse `json:"exercises"`
	CreatedAt   time.Time                 `json:"createdAt"`
}

func FromRoutines(rms []*queries.RoutineView) []*RoutineResponse {
	result := make([]*RoutineResponse, len(rms))
	for i, rm := range rms {
		var resp RoutineResponse
		_ = copier.Copy(&resp, rm)
		result[i] = &resp
	}
	return result
}

type ExerciseSuggestionResponse struct {
	ExerciseID int64  `json:"exerciseId"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
}

func FromSuggestions(ss []queries.ExerciseSuggestion) []ExerciseSuggestionResponse {
	result := make([]ExerciseSuggestionResponse, len(ss))
	for i, s := range ss {
		result[i] = ExerciseSuggestionResponse{
			ExerciseID: s.ExerciseID,
			Name:       s.Name,
			Category:   s.Category,
		}
	}
	return result
}

type RoutineDraftResponse struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Exercises   []RoutineExerciseResponse `json:"exercises"`
}

func FromDraft(d *session.RoutineDraft) *RoutineDraftResponse {
	if d == nil {
		return nil
	}
	resp := &RoutineDraftResponse{
		Name:        d.Name,
		Description: d.Description,
		Exercises:   make([]RoutineExerciseResponse, len(d.Exercises)),
	}
	for i, ex := range d.Exercises {
		resp.Exercises[i] = RoutineExerciseResponse{
			ExerciseID:   ex.ExerciseID,
			ExerciseName: ex.ExerciseName,
			Sets:         ex.Sets,
			Reps:         ex.Reps,
			OrderIndex:   int32(i),
		}
	}
	return resp
}
