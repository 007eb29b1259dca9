package api

import (
	"errors"
	"log/slog"
	"net/http"

	"gymgain/internal/domain/booking"
	reqdto "gymgain/internal/handler/dto/request"
	resdto "gymgain/internal/handler/dto/response"
	"gymgain/internal/handler/middleware"
	"gymgain/internal/usecase/commands"
	"gymgain/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workoutQueries  queries.WorkoutQueries
	workoutCommands commands.WorkoutCommands
}

func NewWorkoutHandler(workoutQueries queries.WorkoutQueries, workoutCommands commands.WorkoutCommands) *WorkoutHandler {
	return &WorkoutHandler{
		workoutQueries:  workoutQueries,
		workoutCommands: workoutCommands,
	}
}

// @Summary List workouts
// @Tags workouts
// @Produce json
// @Success 200 {object} map[string]any
// @Router /workouts [get]
func (h *WorkoutHandler) List(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	workouts, err := h.workoutQueries.ListForUser(c.Request.Context(), sess.UserID)
	if err != nil {
		slog.Error("workout list failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": resdto.FromWorkouts(workouts)})
}

// @Summary Log workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param request body reqdto.LogWorkoutRequest true "Workout"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /workouts/add [post]
func (h *WorkoutHandler) Add(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.LogWorkoutRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.workoutCommands.Log(c.Request.Context(), sess.UserID, commands.LogWorkoutInput{
		WorkoutDate: req.WorkoutDate,
		Kind:        req.Kind,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workout date"})
			return
		}
		slog.Error("workout log failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
