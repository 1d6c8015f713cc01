package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campuscare/backend/internal/dto"
	"github.com/campuscare/backend/internal/services"
)

type NotificationHandler struct {
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListUrgent returns the most recent urgent notifications for the admin
// dashboard, newest first, capped by the configured limit.
func (h *NotificationHandler) ListUrgent(c *fiber.Ctx) error {
	notifications, err := h.service.ListRecent(c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notifications)
}

// Resolve permanently removes a notification once an administrator has
// handled it.
func (h *NotificationHandler) Resolve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid notification ID",
		})
	}

	if err := h.service.Resolve(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification resolved"})
}
