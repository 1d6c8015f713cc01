package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campuscare/backend/internal/dto"
	"github.com/campuscare/backend/internal/services"
)

type AnonymousHandler struct {
	service *services.AnonymousService
}

func NewAnonymousHandler(service *services.AnonymousService) *AnonymousHandler {
	return &AnonymousHandler{service: service}
}

// Create accepts an anonymous message. No authentication: anonymity is
// the point of this channel.
func (h *AnonymousHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAnonymousMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	msg, err := h.service.Create(req.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

func (h *AnonymousHandler) List(c *fiber.Ctx) error {
	messages, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(messages)
}

func (h *AnonymousHandler) GetOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid message ID",
		})
	}

	msg, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(msg)
}

func (h *AnonymousHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid message ID",
		})
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Message deleted successfully"})
}
