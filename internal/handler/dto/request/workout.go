package request

type LogWorkoutRequest struct {
	WorkoutDate string `form:"workout_date" json:"workout_date" binding:"required"`
	Kind        string `form:"kind" json:"kind" binding:"required"`
	Notes       string `form:"notes" json:"notes"`
}
