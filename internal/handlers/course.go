package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/courseorders/internal/middleware"
	"github.com/example/courseorders/internal/views"
)

// CourseHandler serves the study page an order card links to.
type CourseHandler struct {
	customers CustomerStore
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(customers CustomerStore) *CourseHandler {
	return &CourseHandler{customers: customers}
}

type coursePage struct {
	ID         string
	Title      string
	EnrolledOn string
}

// Show renders a purchased course; courses the customer has not bought are 404.
func (h *CourseHandler) Show(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return sendRedirect(c, Redirect{Destination: LoginPath})
	}

	courseID := c.Params("courseId")
	if courseID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing course id")
	}

	ctx := c.UserContext()
	user, err := h.customers.FindByEmail(ctx, sess.Email, false)
	if err != nil {
		return err
	}
	if user == nil {
		return sendRedirect(c, Redirect{Destination: LoginPath})
	}

	order, err := h.customers.FindOrderByCourse(ctx, user.ID, courseID)
	if err != nil {
		return err
	}
	if order == nil {
		return fiber.NewError(fiber.StatusNotFound, "course not found")
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Render(views.Course, fiber.Map{
		"Title":   order.CourseTitle,
		"Session": sess,
		"Course": coursePage{
			ID:         order.CourseID,
			Title:      order.CourseTitle,
			EnrolledOn: order.CreatedAt.UTC().Format("January 2, 2006"),
		},
	}, views.Layout)
}
