package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/courseorders/internal/middleware"
	"github.com/example/courseorders/internal/models"
	"github.com/example/courseorders/internal/session"
	"github.com/example/courseorders/internal/views"
)

// CustomerStore is the persistence the page handlers read from.
type CustomerStore interface {
	FindByEmail(ctx context.Context, email string, includeOrders bool) (*models.User, error)
	FindOrderByCourse(ctx context.Context, userID uuid.UUID, courseID string) (*models.Order, error)
}

// OrdersHandler serves the purchased courses page.
type OrdersHandler struct {
	customers              CustomerStore
	money                  AmountFormatter
	permanentLoginRedirect bool
}

// NewOrdersHandler constructs OrdersHandler.
func NewOrdersHandler(customers CustomerStore, money AmountFormatter, permanentLoginRedirect bool) *OrdersHandler {
	return &OrdersHandler{customers: customers, money: money, permanentLoginRedirect: permanentLoginRedirect}
}

// Load resolves what the orders page should do for the given session.
// A store failure is returned as is.
func (h *OrdersHandler) Load(ctx context.Context, sess *session.Session) (PageResult, error) {
	if sess == nil {
		return h.loginRedirect(), nil
	}

	user, err := h.customers.FindByEmail(ctx, sess.Email, true)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return h.loginRedirect(), nil
	}

	return Rendered{Session: sess, Customer: NewCustomerView(user)}, nil
}

// Show handles GET /orders.
func (h *OrdersHandler) Show(c *fiber.Ctx) error {
	result, err := h.Load(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return err
	}

	switch r := result.(type) {
	case Redirect:
		return sendRedirect(c, r)
	case Rendered:
		return h.Render(c, r)
	default:
		return fiber.ErrInternalServerError
	}
}

// Render writes the orders page. Missing session or customer renders nothing.
func (h *OrdersHandler) Render(c *fiber.Ctx, r Rendered) error {
	if r.Session == nil || r.Customer == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Render(views.Orders, fiber.Map{
		"Title":    "Orders",
		"Session":  r.Session,
		"Customer": r.Customer,
		"Page":     BuildOrdersPage(r.Customer, h.money),
	}, views.Layout)
}

func (h *OrdersHandler) loginRedirect() Redirect {
	return Redirect{Destination: LoginPath, Permanent: h.permanentLoginRedirect}
}

func sendRedirect(c *fiber.Ctx, r Redirect) error {
	status := fiber.StatusTemporaryRedirect
	if r.Permanent {
		status = fiber.StatusPermanentRedirect
	}
	return c.Redirect(r.Destination, status)
}
