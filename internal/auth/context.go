package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/dealerpost/internal/session"
	"github.com/loganlanou/dealerpost/storage/db"
)

const (
	// IsAuthenticatedKey is set by the session loader for dashboard pages.
	IsAuthenticatedKey = "is_authenticated"
	// SessionUserKey holds the *session.UserData of a dashboard request.
	SessionUserKey = "session_user"
	// DBUserKey holds the *db.User resolved from a bearer token.
	DBUserKey = "db_user"
)

// Context holds authentication data to be passed to templates
type Context struct {
	IsAuthenticated bool
	User            *UserData
}

type UserData struct {
	ID       string
	Email    string
	FullName string
}

// GetAuthContext gets auth context from the session (loaded by middleware)
func GetAuthContext(c echo.Context) *Context {
	sessionUser, ok := GetSessionUser(c)
	if !ok {
		return &Context{}
	}

	return &Context{
		IsAuthenticated: true,
		User: &UserData{
			ID:       sessionUser.ID,
			Email:    sessionUser.Email,
			FullName: sessionUser.FullName,
		},
	}
}

func GetSessionUser(c echo.Context) (*session.UserData, bool) {
	if isAuth, _ := c.Get(IsAuthenticatedKey).(bool); !isAuth {
		return nil, false
	}
	u, ok := c.Get(SessionUserKey).(*session.UserData)
	return u, ok && u != nil
}

// GetDBUser retrieves the database user from context
func GetDBUser(c echo.Context) (*db.User, bool) {
	dbUser, ok := c.Get(DBUserKey).(*db.User)
	return dbUser, ok && dbUser != nil
}

// IsAuthenticated checks if the current request is authenticated
func IsAuthenticated(c echo.Context) bool {
	isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
	return isAuth
}

// GetUserID returns the id of the API user or, failing that, the session user.
func GetUserID(c echo.Context) (string, bool) {
	if dbUser, ok := GetDBUser(c); ok {
		return dbUser.ID, true
	}
	if u, ok := GetSessionUser(c); ok {
		return u.ID, true
	}
	return "", false
}
