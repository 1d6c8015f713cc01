package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/campuscare/backend/internal/config"
	"github.com/campuscare/backend/internal/handlers"
	"github.com/campuscare/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	healthHandler *handlers.HealthHandler,
	anonymousHandler *handlers.AnonymousHandler,
	concernHandler *handlers.ConcernHandler,
	notificationHandler *handlers.NotificationHandler,
	answerHandler *handlers.AnswerHandler,
	adviceHandler *handlers.AdviceHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public advice articles
	api.Get("/advice", adviceHandler.List)

	// Anonymous messages: creation is public, everything else is
	// admin-only. The open endpoint gets a stricter limiter.
	anonymous := api.Group("/anonymous")
	anonymous.Post("/create", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), anonymousHandler.Create)

	// Identified concern reports (JWT required)
	concerns := api.Group("/concerns", middleware.JWTProtected(cfg))
	concerns.Post("/create", concernHandler.Create)
	concerns.Get("/user/:userId", concernHandler.ListByUser)
	concerns.Get("/:id", concernHandler.GetOne)

	// Answers addressed to the authenticated user
	api.Get("/answers/me", middleware.JWTProtected(cfg), answerHandler.ListMine)

	// Admin surface (JWT + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))

	admin.Get("/urgent", notificationHandler.ListUrgent)
	admin.Delete("/urgent/:id", notificationHandler.Resolve)

	admin.Get("/anonymous", anonymousHandler.List)
	admin.Get("/anonymous/:id", anonymousHandler.GetOne)
	admin.Delete("/anonymous/:id", anonymousHandler.Delete)

	admin.Get("/concerns", concernHandler.List)
	admin.Patch("/concerns/:id/status", concernHandler.UpdateStatus)
	admin.Delete("/concerns/:id", concernHandler.Delete)

	admin.Post("/answers", answerHandler.Create)
	admin.Get("/answers", answerHandler.ListAll)
	admin.Get("/answers/user/:id", answerHandler.ListForUser)

	admin.Post("/advice", adviceHandler.Create)
	admin.Patch("/advice/:id", adviceHandler.Update)
	admin.Delete("/advice/:id", adviceHandler.Delete)
}
