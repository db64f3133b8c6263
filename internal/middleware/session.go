package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/internal/session"
)

// LoadSession is middleware that loads user session into Echo context
func LoadSession(sessionMgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userData, err := sessionMgr.GetSession(c)
			if err != nil || userData == nil || userData.Token == "" {
				slog.Debug("no dashboard session", "path", c.Request().URL.Path)
				c.Set(auth.IsAuthenticatedKey, false)
				return next(c)
			}

			c.Set(auth.SessionUserKey, userData)
			c.Set(auth.IsAuthenticatedKey, true)
			return next(c)
		}
	}
}
