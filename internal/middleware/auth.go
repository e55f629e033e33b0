package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/courseorders/internal/session"
)

const sessionContextKey = "currentSession"

// SessionLookup resolves the caller's session; nil means anonymous.
type SessionLookup interface {
	GetSession(c *fiber.Ctx) (*session.Session, error)
}

// Session resolves the request session once and stores it in context.
// Anonymous requests pass through; handlers decide whether to redirect.
func Session(lookup SessionLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := lookup.GetSession(c)
		if err != nil {
			return err
		}
		if sess != nil {
			c.Locals(sessionContextKey, sess)
		}
		return c.Next()
	}
}

// CurrentSession extracts the resolved session from context.
func CurrentSession(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(sessionContextKey).(*session.Session)
	return sess
}
