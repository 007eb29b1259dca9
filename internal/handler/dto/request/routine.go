package request

type RoutineSearchRequest struct {
	Query string `form:"query" json:"query" binding:"required"`
}

type AddExerciseRequest struct {
	ExerciseID   int64  `form:"exercise_id" json:"exercise_id"`
	ExerciseName string `form:"exercise_name" json:"exercise_name" binding:"required"`
	Sets         int32  `form:"sets" json:"sets"`
	Reps         int32  `form:"reps" json:"reps"`
}

type RemoveExerciseRequest struct {
	Index int `form:"index" json:"index"`
}

type SaveRoutineRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description"`
}
