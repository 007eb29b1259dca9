package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "gymgain/internal/handler/dto/request"
	"gymgain/internal/handler/middleware"
	"gymgain/internal/infra/session"
	"gymgain/internal/pkg/config"
	"gymgain/internal/pkg/cookie"
	"gymgain/internal/pkg/sessiontoken"
	"gymgain/internal/usecase/commands"

	"gymgain/internal/domain/user"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	sessions     session.Store
	tokens       *sessiontoken.Service
	cookieCfg    config.CookieConfig
	sessionCfg   config.SessionConfig
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	sessions session.Store,
	tokens *sessiontoken.Service,
	cfg config.Config,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		sessions:     sessions,
		tokens:       tokens,
		cookieCfg:    cfg.Cookie,
		sessionCfg:   cfg.Session,
	}
}

// @Summary Register member
// @Description Create a member account with the signup token grant
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 302
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	_, err := h.authCommands.Register(c.Request.Context(), commands.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		case errors.Is(err, user.ErrInvalidUsername):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be 3-30 characters"})
		case errors.Is(err, commands.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already registered"})
		default:
			slog.Error("registration failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Redirect(http.StatusFound, "/users/login")
}

// @Summary Login
// @Description Verify credentials and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 302
// @Failure 401 {object} map[string]string
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creds, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	sess := &session.Session{
		UserID:       creds.ID,
		Username:     creds.Username,
		TokenBalance: creds.TokenBalance,
		Tier:         creds.Tier.String(),
	}
	sid, err := h.sessions.Create(c.Request.Context(), sess)
	if err != nil {
		slog.Error("session create failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := h.tokens.Sign(sid)
	if err != nil {
		slog.Error("session token sign failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.sessionCfg.TTL)
	c.Redirect(http.StatusFound, "/dashboard")
}

// @Summary Logout
// @Description Destroy the session and clear the cookie
// @Tags auth
// @Success 302
// @Router /users/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess, ok := middleware.GetSession(c); ok {
		if err := h.sessions.Delete(c.Request.Context(), sess.ID); err != nil {
			slog.Warn("session delete failed", "error", err.Error())
		}
	}

	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Redirect(http.StatusFound, "/users/login")
}
