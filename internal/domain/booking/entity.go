package booking

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const StatusConfirmed Status = "confirmed"

type Booking struct {
	id          int64
	userID      uuid.UUID
	scheduleID  int64
	bookingDate time.Time
	status      Status
	createdAt   time.Time
}

func NewBooking(userID uuid.UUID, scheduleID int64, bookingDate time.Time) *Booking {
	return &Booking{
		userID:      userID,
		scheduleID:  scheduleID,
		bookingDate: bookingDate,
		status:      StatusConfirmed,
	}
}

func ReconstructBooking(id int64, userID uuid.UUID, scheduleID int64, bookingDate time.Time, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		scheduleID:  scheduleID,
		bookingDate: bookingDate,
		status:      status,
		createdAt:   createdAt,
	}
}

func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }

func (b *Booking) ID() int64             { return b.id }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) ScheduleID() int64     { return b.scheduleID }
func (b *Booking) BookingDate() time.Time { return b.bookingDate }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
