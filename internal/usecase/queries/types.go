package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ScheduleItemView struct {
	ScheduleID   int64  `json:"schedule_id"`
	Day          string `json:"day"`
	StartTime    string `json:"start_time"`
	Capacity     int32  `json:"capacity"`
	ActivityName string `json:"activity_name"`
	Description  string `json:"description"`
	Cost         int32  `json:"cost"`
	TierRequired int16  `json:"tier_required"`
	BookingDate  string `json:"booking_date"`
	BookedCount  int32  `json:"booked_count"`
}

type BookingListItem struct {
	ID           int64     `json:"id"`
	ActivityName string    `json:"activity_name"`
	Day          string    `json:"day"`
	StartTime    string    `json:"start_time"`
	BookingDate  time.Time `json:"booking_date"`
	Status       string    `json:"status"`
}

type SocialFeedItem struct {
	Username     string    `json:"username"`
	ActivityName string    `json:"activity_name"`
	BookingDate  time.Time `json:"booking_date"`
	Day          string    `json:"day"`
	StartTime    string    `json:"start_time"`
}

type UserView struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	TokenBalance   int32     `json:"token_balance"`
	MembershipTier string    `json:"membership_tier"`
}

type RoutineExerciseView struct {
	ExerciseID   int64  `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	Sets         int32  `json:"sets"`
	Reps         int32  `json:"reps"`
	OrderIndex   int32  `json:"order_index"`
}

type RoutineView struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Exercises   []RoutineExerciseView `json:"exercises"`
	CreatedAt   time.Time             `json:"created_at"`
}

type WorkoutView struct {
	ID          int64     `json:"id"`
	WorkoutDate time.Time `json:"workout_date"`
	Kind        string    `json:"kind"`
	Notes       string    `json:"notes"`
}

type BookedCount struct {
	ScheduleID  int64
	BookingDate time.Time
	Count       int32
}

type ExerciseSuggestion struct {
	ExerciseID int64  `json:"exercise_id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
}
