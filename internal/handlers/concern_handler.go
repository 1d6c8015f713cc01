package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campuscare/backend/internal/dto"
	"github.com/campuscare/backend/internal/identity"
	"github.com/campuscare/backend/internal/services"
)

type ConcernHandler struct {
	service *services.ConcernService
}

func NewConcernHandler(service *services.ConcernService) *ConcernHandler {
	return &ConcernHandler{service: service}
}

func (h *ConcernHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateConcernRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	concern, err := h.service.Create(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(concern)
}

func (h *ConcernHandler) List(c *fiber.Ctx) error {
	concerns, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(concerns)
}

func (h *ConcernHandler) GetOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	concern, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(concern)
}

func (h *ConcernHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	concerns, err := h.service.ListByUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(concerns)
}

func (h *ConcernHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.UpdateConcernStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.UpdateStatus(id, req.Status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Report status updated"})
}

func (h *ConcernHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Report deleted successfully"})
}
