package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shopmonitor/dashboard"
	"shopmonitor/models"
	"shopmonitor/utils"
)

// Store is the data access the handlers need. condb.Store implements it.
type Store interface {
	dashboard.Source
	CreateInventoryItem(ctx context.Context, in models.NewInventoryItem) (int64, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	store   Store
	tokens  *utils.TokenIssuer
	log     *zap.Logger
	appName string
}

func NewHandler(store Store, tokens *utils.TokenIssuer, log *zap.Logger, appName string) *Handler {
	return &Handler{store: store, tokens: tokens, log: log, appName: appName}
}

// dbError logs a storage failure under op and answers 500 with the raw
// driver message.
func (h *Handler) dbError(c *fiber.Ctx, op string, err error) error {
	h.log.Error(op,
		zap.Error(err),
		zap.String("path", c.Path()),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// ErrorHandler renders errors that reach fiber as {"error": message}.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))
		}
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
