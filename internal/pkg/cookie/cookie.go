package cookie

import (
	"net/http"
	"time"

	"gymgain/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "gym_session"

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		token,
		int(ttl.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
