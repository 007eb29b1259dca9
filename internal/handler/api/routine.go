package api

import (
	"errors"
	"log/slog"
	"net/http"

	"gymgain/internal/domain/routine"
	reqdto "gymgain/internal/handler/dto/request"
	resdto "gymgain/internal/handler/dto/response"
	"gymgain/internal/handler/middleware"
	"gymgain/internal/infra/session"
	"gymgain/internal/usecase/commands"
	"gymgain/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoutineHandler struct {
	routineQueries  queries.RoutineQueries
	routineCommands commands.RoutineCommands
	sessions        session.Store
}

func NewRoutineHandler(
	routineQueries queries.RoutineQueries,
	routineCommands commands.RoutineCommands,
	sessions session.Store,
) *RoutineHandler {
	return &RoutineHandler{
		routineQueries:  routineQueries,
		routineCommands: routineCommands,
		sessions:        sessions,
	}
}

// @Summary List routines
// @Tags routines
// @Produce json
// @Success 200 {object} map[string]any
// @Router /routines [get]
func (h *RoutineHandler) List(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	routines, err := h.routineQueries.ListForUser(c.Request.Context(), sess.UserID)
	if err != nil {
		slog.Error("routine list failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"routines": resdto.FromRoutines(routines)})
}

// @Summary New-routine workspace
// @Description The in-progress draft plus catalog suggestions for ?query=
// @Tags routines
// @Produce json
// @Param query query string false "Exercise search term"
// @Success 200 {object} map[string]any
// @Router /routines/new [get]
func (h *RoutineHandler) New(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body := gin.H{"draft": resdto.FromDraft(sess.TempRoutine)}

	if query := c.Query("query"); query != "" {
		suggestions, err := h.routineQueries.SearchExercises(c.Request.Context(), query)
		if err != nil {
			// Catalog outages degrade to an empty suggestion list.
			slog.Warn("exercise search failed", "error", err.Error())
			suggestions = []queries.ExerciseSuggestion{}
		}
		body["suggestions"] = resdto.FromSuggestions(suggestions)
	}

	c.JSON(http.StatusOK, body)
}

// @Summary Search exercises
// @Tags routines
// @Accept json
// @Produce json
// @Param request body reqdto.RoutineSearchRequest true "Search term"
// @Success 200 {object} map[string]any
// @Router /routines/search [post]
func (h *RoutineHandler) Search(c *gin.Context) {
	var req reqdto.RoutineSearchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	suggestions, err := h.routineQueries.SearchExercises(c.Request.Context(), req.Query)
	if err != nil {
		slog.Error("exercise search failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "Exercise catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": resdto.FromSuggestions(suggestions)})
}

// @Summary Add draft exercise
// @Description Append an exercise to the session-held routine draft
// @Tags routines
// @Accept json
// @Produce json
// @Param request body reqdto.AddExerciseRequest true "Exercise"
// @Success 200 {object} map[string]any
// @Router /routines/add-exercise [post]
func (h *RoutineHandler) AddExercise(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if sess.TempRoutine == nil {
		sess.TempRoutine = &session.RoutineDraft{}
	}
	sess.TempRoutine.Exercises = append(sess.TempRoutine.Exercises, session.DraftExercise{
		ExerciseID:   req.ExerciseID,
		ExerciseName: req.ExerciseName,
		Sets:         req.Sets,
		Reps:         req.Reps,
	})

	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": resdto.FromDraft(sess.TempRoutine)})
}

// @Summary Remove draft exercise
// @Tags routines
// @Accept json
// @Produce json
// @Param request body reqdto.RemoveExerciseRequest true "Draft index"
// @Success 200 {object} map[string]any
// @Router /routines/remove-exercise [post]
func (h *RoutineHandler) RemoveExercise(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.RemoveExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if sess.TempRoutine == nil || req.Index < 0 || req.Index >= len(sess.TempRoutine.Exercises) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No such draft exercise"})
		return
	}

	sess.TempRoutine.Exercises = append(
		sess.TempRoutine.Exercises[:req.Index],
		sess.TempRoutine.Exercises[req.Index+1:]...,
	)

	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": resdto.FromDraft(sess.TempRoutine)})
}

// @Summary Save routine
// @Description Persist the drafted routine and all its exercises atomically
// @Tags routines
// @Accept json
// @Produce json
// @Param request body reqdto.SaveRoutineRequest true "Routine"
// @Success 201 {object} map[string]any
// @Failure 422 {object} map[string]string
// @Router /routines [post]
func (h *RoutineHandler) Save(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SaveRoutineRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var exercises []routine.Exercise
	if sess.TempRoutine != nil {
		exercises = make([]routine.Exercise, len(sess.TempRoutine.Exercises))
		for i, ex := range sess.TempRoutine.Exercises {
			exercises[i] = routine.Exercise{
				ExerciseID:   ex.ExerciseID,
				ExerciseName: ex.ExerciseName,
				Sets:         ex.Sets,
				Reps:         ex.Reps,
			}
		}
	}

	id, err := h.routineCommands.Save(c.Request.Context(), sess.UserID, commands.SaveRoutineInput{
		Name:        req.Name,
		Description: req.Description,
		Exercises:   exercises,
	})
	if err != nil {
		switch {
		case errors.Is(err, routine.ErrNameRequired), errors.Is(err, routine.ErrTooManyExercises):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			slog.Error("routine save failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	sess.TempRoutine = nil
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err.Error())
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Discard draft
// @Tags routines
// @Success 302
// @Router /routines/cancel-creation [get]
func (h *RoutineHandler) CancelCreation(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	sess.TempRoutine = nil
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err.Error())
	}

	c.Redirect(http.StatusFound, "/routines")
}
