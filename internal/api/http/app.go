package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Options configures the Fiber app built by NewApp.
type Options struct {
	// AllowOrigins is the CORS allow list; empty allows every origin.
	AllowOrigins string
	// AccessLog enables the per-request access log.
	AccessLog bool
}

// NewApp builds the Fiber app with the service's error handler and middleware.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "weather-records",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
		}))
	}

	origins := opts.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	return app
}

// ErrorHandler renders every error as {"error": message}.
// Errors that are not *fiber.Error map to 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
