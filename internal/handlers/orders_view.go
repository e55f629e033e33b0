package handlers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/example/courseorders/internal/models"
	"github.com/example/courseorders/internal/session"
)

// TimestampLayout is the string form of timestamps in page data.
const TimestampLayout = time.RFC3339

const (
	LoginPath        = "/users/login"
	OrdersPath       = "/orders"
	CourseStudyPath  = "/users/dashboard/courses/"
	ordersSubHeading = "orders"
	ordersIntro      = "Welcome to your Orders page, your gateway to instant access to your purchased courses. " +
		"This page serves as a central hub where you can conveniently navigate to your course videos and start your learning journey."
	studyLabel = "Study Now"
)

// PageResult is the outcome of the orders data step: Redirect or Rendered.
type PageResult interface {
	isPageResult()
}

// Redirect sends the browser elsewhere instead of rendering.
type Redirect struct {
	Destination string
	Permanent   bool
}

// Rendered carries the data for the orders page.
type Rendered struct {
	Session  *session.Session
	Customer *CustomerView
}

func (Redirect) isPageResult() {}
func (Rendered) isPageResult() {}

// CustomerView is a customer with timestamps flattened to strings.
type CustomerView struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
	Orders    []OrderView `json:"orders"`
}

// OrderView is an order with timestamps flattened to strings.
type OrderView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CourseID    string    `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	AmountTotal int64     `json:"amount_total"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// NewCustomerView copies the user and its orders, formatting every timestamp.
// The password hash is not carried over.
func NewCustomerView(user *models.User) *CustomerView {
	view := &CustomerView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: formatTimestamp(user.CreatedAt),
		UpdatedAt: formatTimestamp(user.UpdatedAt),
		Orders:    make([]OrderView, 0, len(user.Orders)),
	}

	for _, order := range user.Orders {
		view.Orders = append(view.Orders, OrderView{
			ID:          order.ID,
			UserID:      order.UserID,
			CourseID:    order.CourseID,
			CourseTitle: order.CourseTitle,
			AmountTotal: order.AmountTotal,
			CreatedAt:   formatTimestamp(order.CreatedAt),
			UpdatedAt:   formatTimestamp(order.UpdatedAt),
		})
	}

	return view
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// AmountFormatter turns minor currency units into a display string.
type AmountFormatter interface {
	Format(amount int64) string
}

// OrdersPage is the presentation model of the orders template.
type OrdersPage struct {
	SubHeading string
	Heading    string
	Intro      string
	Cards      []OrderCard
}

// OrderCard is one purchased course on the orders page.
type OrderCard struct {
	OrderID uuid.UUID
	Title   string
	Amount  string
	Href    string
	Label   string
}

// BuildOrdersPage lays out one card per order, keeping the store's order.
func BuildOrdersPage(customer *CustomerView, money AmountFormatter) OrdersPage {
	page := OrdersPage{
		SubHeading: ordersSubHeading,
		Heading:    EnrolledHeading(len(customer.Orders)),
		Intro:      ordersIntro,
		Cards:      make([]OrderCard, 0, len(customer.Orders)),
	}

	for _, order := range customer.Orders {
		page.Cards = append(page.Cards, OrderCard{
			OrderID: order.ID,
			Title:   order.CourseTitle,
			Amount:  money.Format(order.AmountTotal),
			Href:    CourseHref(order.CourseID),
			Label:   studyLabel,
		})
	}

	return page
}

// EnrolledHeading pluralizes only above one, so zero reads "0 course".
func EnrolledHeading(n int) string {
	noun := "course"
	if n > 1 {
		noun = "courses"
	}
	return fmt.Sprintf("You have enrolled %d %s", n, noun)
}

// CourseHref is the study page link for a course.
func CourseHref(courseID string) string {
	return CourseStudyPath + url.PathEscape(courseID)
}
