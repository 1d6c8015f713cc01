package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campuscare/backend/internal/dto"
	"github.com/campuscare/backend/internal/services"
)

type AdviceHandler struct {
	service *services.AdviceService
}

func NewAdviceHandler(service *services.AdviceService) *AdviceHandler {
	return &AdviceHandler{service: service}
}

func (h *AdviceHandler) List(c *fiber.Ctx) error {
	articles, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(articles)
}

func (h *AdviceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAdviceArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	article, err := h.service.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

func (h *AdviceHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid article ID",
		})
	}

	var req dto.UpdateAdviceArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	article, err := h.service.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(article)
}

func (h *AdviceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid article ID",
		})
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Article deleted"})
}
