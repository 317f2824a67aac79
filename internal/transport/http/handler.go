// Package http exposes the trainer over a REST API.
package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"chesscoach/internal/academy"
	"chesscoach/internal/storage"
)

type Handler struct {
	academy *academy.Academy
	store   *storage.Store // nil if persistence disabled
}

func NewHandler(a *academy.Academy, store *storage.Store) *Handler {
	return &Handler{academy: a, store: store}
}

func NewFiberApp(a *academy.Academy, store *storage.Store, devMode bool) *fiber.App {
	h := NewHandler(a, store)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	// Global middleware (order matters)
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Health check (no rate limit)
	app.Get("/health", h.Health)

	api := app.Group("/api/v1")

	// Rate limiter: depth-3 searches are cheap but not free
	maxReq := 5
	if devMode {
		maxReq = 50
	}
	api.Use(limiter.New(limiter.Config{
		Max:        maxReq,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Check X-Forwarded-For first, then fall back to the remote IP
			if xff := c.Get("X-Forwarded-For"); xff != "" {
				if idx := strings.Index(xff, ","); idx != -1 {
					return strings.TrimSpace(xff[:idx])
				}
				return xff
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse{
				Error:   "rate limit exceeded",
				Code:    ErrRateLimitExceeded,
				Details: fmt.Sprintf("%d requests per second allowed", maxReq),
			})
		},
	}))

	api.Use(contentTypeValidator)

	chess := api.Group("/chess")
	chess.Get("/new-game", h.NewGame)
	chess.Post("/legal-moves", h.LegalMoves)
	chess.Post("/apply-move", h.ApplyMove)
	chess.Post("/ai-move", h.AIMove)
	chess.Post("/hint", h.Hint)
	chess.Get("/practice-puzzle", h.PracticePuzzle)

	return app
}

// contentTypeValidator ensures POST requests carry application/json
func contentTypeValidator(c *fiber.Ctx) error {
	if c.Method() == "POST" {
		contentType := c.Get("Content-Type")
		if contentType != "application/json" && contentType != "" {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(ErrorResponse{
				Error:   "unsupported media type",
				Code:    ErrInvalidContent,
				Details: "Content-Type must be application/json",
			})
		}
	}
	return c.Next()
}

// customErrorHandler provides consistent error responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	response := ErrorResponse{
		Error: "internal server error",
		Code:  ErrInternalError,
	}

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		response.Error = e.Message

		switch code {
		case fiber.StatusBadRequest:
			response.Code = ErrInvalidRequest
		case fiber.StatusTooManyRequests:
			response.Code = ErrRateLimitExceeded
		}
	}

	return c.Status(code).JSON(response)
}

// Health reports service and storage status.
func (h *Handler) Health(c *fiber.Ctx) error {
	storageStatus := "disabled"
	if h.store != nil {
		storageStatus = "degraded"
		if h.store.IsHealthy() {
			storageStatus = "ok"
		}
	}
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"storage": storageStatus,
		"time":    time.Now().Unix(),
	})
}
