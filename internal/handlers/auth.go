package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/courseorders/internal/middleware"
	"github.com/example/courseorders/internal/models"
	"github.com/example/courseorders/internal/session"
	"github.com/example/courseorders/internal/utils"
	"github.com/example/courseorders/internal/views"
)

const invalidCredentialsMessage = "invalid email or password"

// SessionManager starts and ends login sessions.
type SessionManager interface {
	Issue(user *models.User) (string, *session.Session, error)
	SetCookie(c *fiber.Ctx, token string, sess *session.Session)
	ClearCookie(c *fiber.Ctx)
	Revoke(ctx context.Context, sess *session.Session) error
}

// AuthHandler bundles dependencies for the login pages.
type AuthHandler struct {
	customers CustomerStore
	sessions  SessionManager
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(customers CustomerStore, sessions SessionManager) *AuthHandler {
	return &AuthHandler{customers: customers, sessions: sessions}
}

// LoginForm renders the login page, or sends a logged-in user to their orders.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if middleware.CurrentSession(c) != nil {
		return c.Redirect(OrdersPath, fiber.StatusSeeOther)
	}
	return h.renderLogin(c, fiber.StatusOK, "", "")
}

// Login checks credentials and starts a session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return h.renderLogin(c, fiber.StatusBadRequest, email, "email and password are required")
	}

	user, err := h.customers.FindByEmail(c.UserContext(), email, false)
	if err != nil {
		return err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return h.renderLogin(c, fiber.StatusUnauthorized, email, invalidCredentialsMessage)
	}

	token, sess, err := h.sessions.Issue(user)
	if err != nil {
		return err
	}

	h.sessions.SetCookie(c, token, sess)
	return c.Redirect(OrdersPath, fiber.StatusSeeOther)
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess := middleware.CurrentSession(c); sess != nil {
		if err := h.sessions.Revoke(c.UserContext(), sess); err != nil {
			return err
		}
	}

	h.sessions.ClearCookie(c)
	return c.Redirect(LoginPath, fiber.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(c *fiber.Ctx, status int, email, message string) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).Render(views.Login, fiber.Map{
		"Title": "Log in",
		"Email": email,
		"Error": message,
	}, views.Layout)
}
