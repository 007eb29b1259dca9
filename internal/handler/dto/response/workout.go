package response

import (
	"gymgain/internal/domain/booking"
	"gymgain/internal/usecase/queries"
)

type WorkoutResponse struct {
	ID          int64  `json:"id"`
	WorkoutDate string `json:"workoutDate"`
	Kind        string `json:"kind"`
	Notes       string `json:"notes"`
}

func FromWorkouts(rms []*queries.WorkoutView) []*WorkoutResponse {
	result := make([]*WorkoutResponse, len(rms))
	for i, rm := range rms {
		result[i] = &WorkoutResponse{
			ID:          rm.ID,
			WorkoutDate: rm.WorkoutDate.Format(booking.DateLayout),
			Kind:        rm.Kind,
			Notes:       rm.Notes,
		}
	}
	return result
}
