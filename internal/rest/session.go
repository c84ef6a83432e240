package rest

import (
	"net/http"
	"time"

	"github.com/daniilsolovey/my-site/internal/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionContextKey = "sid"

type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func DefaultCookieConfig() CookieConfig {
	return CookieConfig{
		Name: "sessionid",
		TTL:  session.DefaultTTL,
	}
}

// sessionMiddleware makes sure every visitor carries a session id cookie.
func (h *Handler) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sid := ""
		if cookie, err := c.Cookie(h.cookie.Name); err == nil {
			if id, err := uuid.Parse(cookie.Value); err == nil {
				sid = id.String()
			}
		}

		if sid == "" {
			sid = uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     h.cookie.Name,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(h.cookie.TTL.Seconds()),
				HttpOnly: true,
				Secure:   h.cookie.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionContextKey, sid)

		return next(c)
	}
}

func sessionID(c echo.Context) string {
	sid, _ := c.Get(sessionContextKey).(string)
	return sid
}
