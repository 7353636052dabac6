package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for the authenticated user's ID in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyUserEmail is the key for the authenticated user's email in echo.Context.
	KeyUserEmail ContextKey = "user_email"
)

// SetAuthenticatedUser stores the identity taken from a validated access token.
func SetAuthenticatedUser(c echo.Context, userID uuid.UUID, email string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyUserEmail), email)
}

// GetUserID returns the authenticated user's ID and whether one was set.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetUserEmail returns the authenticated user's email, or empty string.
func GetUserEmail(c echo.Context) string {
	email, _ := c.Get(string(KeyUserEmail)).(string)

	return email
}
