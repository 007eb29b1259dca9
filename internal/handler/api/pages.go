package api

import (
	"errors"
	"log/slog"
	"net/http"

	resdto "gymgain/internal/handler/dto/response"
	"gymgain/internal/handler/middleware"
	"gymgain/internal/infra/session"
	"gymgain/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	userQueries    queries.UserQueries
	bookingQueries queries.BookingQueries
	sessions       session.Store
}

func NewPageHandler(
	userQueries queries.UserQueries,
	bookingQueries queries.BookingQueries,
	sessions session.Store,
) *PageHandler {
	return &PageHandler{
		userQueries:    userQueries,
		bookingQueries: bookingQueries,
		sessions:       sessions,
	}
}

// @Summary Dashboard
// @Description The member's fresh profile, own bookings, and pending flash
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /dashboard [get]
func (h *PageHandler) Dashboard(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// The profile is read fresh; the session copy is only a display cache.
	userView, err := h.userQueries.Profile(c.Request.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		slog.Error("dashboard profile load failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bookings, err := h.bookingQueries.ListForUser(c.Request.Context(), sess.UserID)
	if err != nil {
		slog.Error("dashboard bookings load failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	flash := sess.PopFlash()
	sess.TokenBalance = userView.TokenBalance
	sess.Tier = userView.MembershipTier
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err.Error())
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     resdto.FromUserView(userView),
		"bookings": resdto.FromBookingList(bookings),
		"flash":    resdto.FromFlash(flash),
	})
}

// @Summary Social feed
// @Description Confirmed bookings across the community
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]any
// @Router /social [get]
func (h *PageHandler) Social(c *gin.Context) {
	feed, err := h.bookingQueries.SocialFeed(c.Request.Context())
	if err != nil {
		slog.Error("social feed load failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feed": resdto.FromSocialFeed(feed)})
}
