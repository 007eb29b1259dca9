package request

// Book and cancel arrive as form posts; booking_date stays a string so the
// policy owns its validation.
type BookRequest struct {
	ScheduleID  int64  `form:"schedule_id" json:"schedule_id" binding:"required"`
	BookingDate string `form:"booking_date" json:"booking_date"`
}

type CancelRequest struct {
	BookingID int64 `form:"booking_id" json:"booking_id" binding:"required"`
}
