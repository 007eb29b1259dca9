package middleware

import (
	"log/slog"
	"net/http"

	"gymgain/internal/infra/session"
	"gymgain/internal/pkg/cookie"
	"gymgain/internal/pkg/sessiontoken"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

type SessionMiddleware struct {
	tokens *sessiontoken.Service
	store  session.Store
}

func NewSessionMiddleware(tokens *sessiontoken.Service, store session.Store) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, store: store}
}

// RequireSession resolves the signed cookie to a Redis session and puts it in
// the request context. Browser flows get a redirect to the login page; API
// clients asking for JSON get a 401.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.resolve(c)
		if sess == nil {
			if wantsJSON(c) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
				c.Abort()
				return
			}
			c.Redirect(http.StatusFound, "/users/login")
			c.Abort()
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// OptionalSession attaches the session when the cookie resolves, but never
// blocks the request.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := m.resolve(c); sess != nil {
			c.Set(ctxSessionKey, sess)
		}
		c.Next()
	}
}

func (m *SessionMiddleware) resolve(c *gin.Context) *session.Session {
	token := cookie.GetSessionToken(c)
	if token == "" {
		return nil
	}

	sid, err := m.tokens.Verify(token)
	if err != nil {
		slog.Warn("session token rejected", "error", err.Error())
		return nil
	}

	sess, err := m.store.Get(c.Request.Context(), sid)
	if err != nil {
		if err != session.ErrNotFound {
			slog.Error("session lookup failed", "error", err.Error())
		}
		return nil
	}

	return sess
}

func wantsJSON(c *gin.Context) bool {
	return c.GetHeader("Accept") == "application/json" ||
		c.ContentType() == "application/json"
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
