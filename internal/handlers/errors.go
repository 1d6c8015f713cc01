package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/campuscare/backend/internal/apperrors"
	"github.com/campuscare/backend/internal/dto"
)

// respondError maps a service error onto the HTTP response. Typed
// errors carry their own status; anything else is an unexpected server
// fault and is logged without leaking details to the client.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperrors.KindPersistence {
			slog.Error("persistence failure", "method", c.Method(), "path", c.Path(), "error", err)
		}
		return c.Status(appErr.HTTPStatus()).JSON(dto.ErrorResponse{
			Error:   true,
			Message: appErr.Message,
			Code:    string(appErr.Kind),
			Field:   appErr.Field,
		})
	}

	slog.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Internal server error",
	})
}
