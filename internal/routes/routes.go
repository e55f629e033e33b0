package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/courseorders/internal/config"
	"github.com/example/courseorders/internal/handlers"
	"github.com/example/courseorders/internal/middleware"
	"github.com/example/courseorders/internal/session"
	"github.com/example/courseorders/internal/store"
	"github.com/example/courseorders/internal/utils"
)

// Sessions is what the routes need from the session provider.
type Sessions interface {
	middleware.SessionLookup
	handlers.SessionManager
}

// Register wires up all page routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, sessions *session.Provider) {
	mount(app, store.NewCustomerStore(db), sessions, utils.NewCurrencyFormatter(cfg.Currency), cfg)
}

func mount(app *fiber.App, customers handlers.CustomerStore, sessions Sessions, money handlers.AmountFormatter, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(customers, sessions)
	ordersHandler := handlers.NewOrdersHandler(customers, money, cfg.LoginRedirectPermanent)
	courseHandler := handlers.NewCourseHandler(customers)

	pages := app.Group("", middleware.Session(sessions))

	pages.Get(handlers.OrdersPath, ordersHandler.Show)

	users := pages.Group("/users")
	users.Get("/login", authHandler.LoginForm)
	users.Post("/login", authHandler.Login)
	users.Post("/logout", authHandler.Logout)
	users.Get("/dashboard/courses/:courseId", courseHandler.Show)
}
