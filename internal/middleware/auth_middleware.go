package middleware

import (
	"net/url"
	"strings"

	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TokenCookie = "token"
	LoginPath   = "/login"

	userIDKey = "userID"
)

// Auth resolves the caller from a bearer token or the token cookie. Requests
// without a valid token are redirected to the login page before any handler
// runs.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies(TokenCookie)
		}
		if token == "" {
			return redirectToLogin(c)
		}

		userID, err := util.ValidateJWT(secret, token)
		if err != nil {
			return redirectToLogin(c)
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the caller resolved by Auth, or uuid.Nil outside it.
func UserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(userIDKey).(uuid.UUID)
	return id
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func redirectToLogin(c *fiber.Ctx) error {
	next := strings.ReplaceAll(url.QueryEscape(c.OriginalURL()), "%2F", "/")
	return c.Redirect(LoginPath+"?next="+next, fiber.StatusFound)
}
