package api

import (
	"errors"
	"log/slog"
	"net/http"

	"gymgain/internal/domain/booking"
	reqdto "gymgain/internal/handler/dto/request"
	resdto "gymgain/internal/handler/dto/response"
	"gymgain/internal/handler/middleware"
	"gymgain/internal/infra/session"
	"gymgain/internal/usecase/commands"
	"gymgain/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Flash messages for the book/cancel form flow. These strings are part of the
// member-facing contract; handlers map sentinel errors onto them.
const (
	flashBooked             = "Class booked successfully!"
	flashCancelled          = "Booking cancelled and tokens refunded."
	flashInvalidDate        = "Invalid booking date selected."
	flashClassNotFound      = "Class not found."
	flashAlreadyBooked      = "You have already booked this class!"
	flashClassFull          = "Class is full!"
	flashInsufficient       = "Insufficient tokens! Please top up."
	flashTierTooLow         = "This class requires a higher membership tier!"
	flashBookingNotFound    = "Booking not found."
	flashSomethingWentWrong = "Something went wrong. Please try again."
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
	bookingCommands commands.BookingCommands
	sessions        session.Store
}

func NewScheduleHandler(
	scheduleQueries queries.ScheduleQueries,
	bookingCommands commands.BookingCommands,
	sessions session.Store,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleQueries: scheduleQueries,
		bookingCommands: bookingCommands,
		sessions:        sessions,
	}
}

// @Summary Weekly schedule
// @Description List the weekly class schedule with upcoming dates and booked counts
// @Tags schedule
// @Produce json
// @Param search query string false "Filter by activity name"
// @Success 200 {object} map[string]any
// @Router / [get]
func (h *ScheduleHandler) Index(c *gin.Context) {
	items, err := h.scheduleQueries.WeeklySchedule(c.Request.Context(), c.Query("search"))
	if err != nil {
		slog.Error("schedule load failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body := gin.H{"schedule": resdto.FromScheduleItems(items)}
	if sess, ok := middleware.GetSession(c); ok {
		body["username"] = sess.Username
		body["tokenBalance"] = sess.TokenBalance
		if flash := sess.PopFlash(); flash != nil {
			body["flash"] = resdto.FromFlash(flash)
			h.saveSession(c, sess)
		}
	}

	c.JSON(http.StatusOK, body)
}

// @Summary Book a class
// @Description Book a seat in a class occurrence, debiting the token balance
// @Tags schedule
// @Accept x-www-form-urlencoded
// @Produce json
// @Param schedule_id formData int true "Schedule slot ID"
// @Param booking_date formData string true "Occurrence date (YYYY-MM-DD)"
// @Success 302
// @Router /schedule/book [post]
func (h *ScheduleHandler) Book(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.BookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.flashAndRedirect(c, sess, "error", flashClassNotFound, "/")
		return
	}

	result, err := h.bookingCommands.Book(c.Request.Context(), sess.UserID, req.ScheduleID, req.BookingDate)
	if err != nil {
		h.flashAndRedirect(c, sess, "error", bookErrorMessage(err), "/")
		return
	}

	sess.TokenBalance = result.NewBalance
	h.flashAndRedirect(c, sess, "success", flashBooked, "/dashboard")
}

// @Summary Cancel a booking
// @Description Cancel an own booking and refund the activity cost
// @Tags schedule
// @Accept x-www-form-urlencoded
// @Produce json
// @Param booking_id formData int true "Booking ID"
// @Success 302
// @Router /schedule/cancel [post]
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CancelRequest
	if err := c.ShouldBind(&req); err != nil {
		h.flashAndRedirect(c, sess, "error", flashBookingNotFound, "/dashboard")
		return
	}

	result, err := h.bookingCommands.Cancel(c.Request.Context(), sess.UserID, req.BookingID)
	if err != nil {
		msg := flashSomethingWentWrong
		if errors.Is(err, commands.ErrBookingNotFound) {
			msg = flashBookingNotFound
		} else {
			slog.Error("cancel failed", "error", err.Error())
		}
		h.flashAndRedirect(c, sess, "error", msg, "/dashboard")
		return
	}

	sess.TokenBalance = result.NewBalance
	h.flashAndRedirect(c, sess, "success", flashCancelled, "/dashboard")
}

func bookErrorMessage(err error) string {
	switch {
	case errors.Is(err, booking.ErrInvalidDate):
		return flashInvalidDate
	case errors.Is(err, commands.ErrClassNotFound):
		return flashClassNotFound
	case errors.Is(err, booking.ErrAlreadyBooked):
		return flashAlreadyBooked
	case errors.Is(err, booking.ErrClassFull):
		return flashClassFull
	case errors.Is(err, booking.ErrInsufficientTokens):
		return flashInsufficient
	case errors.Is(err, booking.ErrTierTooLow):
		return flashTierTooLow
	default:
		slog.Error("booking failed", "error", err.Error())
		return flashSomethingWentWrong
	}
}

func (h *ScheduleHandler) flashAndRedirect(c *gin.Context, sess *session.Session, kind, message, location string) {
	sess.SetFlash(kind, message)
	h.saveSession(c, sess)
	c.Redirect(http.StatusFound, location)
}

func (h *ScheduleHandler) saveSession(c *gin.Context, sess *session.Session) {
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err.Error())
	}
}
