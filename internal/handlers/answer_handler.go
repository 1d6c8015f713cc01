package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campuscare/backend/internal/dto"
	"github.com/campuscare/backend/internal/identity"
	"github.com/campuscare/backend/internal/services"
)

type AnswerHandler struct {
	service *services.AnswerService
}

func NewAnswerHandler(service *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: service}
}

func (h *AnswerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	answer, err := h.service.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(answer)
}

// ListMine returns the answers addressed to the authenticated user.
func (h *AnswerHandler) ListMine(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	answers, err := h.service.ListForUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(answers)
}

func (h *AnswerHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	answers, err := h.service.ListForUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(answers)
}

func (h *AnswerHandler) ListAll(c *fiber.Ctx) error {
	answers, err := h.service.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(answers)
}
