package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/dealerpost/storage/db"
)

type UserGetter interface {
	GetUser(ctx context.Context, id string) (db.User, error)
}

// BearerAuth authenticates /api requests from the Authorization header and
// stores the user under DBUserKey.
func BearerAuth(jwtManager *JWTManager, users UserGetter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearer(c.Request())
			if token == "" {
				return unauthorized(c)
			}

			claims, err := jwtManager.ValidateToken(token)
			if err != nil {
				slog.Debug("token validation failed", "error", err)
				return unauthorized(c)
			}

			user, err := users.GetUser(c.Request().Context(), claims.Subject)
			if err != nil {
				slog.Debug("token user lookup failed", "error", err, "user_id", claims.Subject)
				return unauthorized(c)
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusBadRequest, "Inactive user")
			}

			c.Set(DBUserKey, &user)
			return next(c)
		}
	}
}

// RequireLogin redirects dashboard requests without a session to /login.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := GetSessionUser(c); !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set("WWW-Authenticate", "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
}

func extractBearer(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
