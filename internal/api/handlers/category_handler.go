package handlers

import (
	"finledger/internal/dto"
	"finledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories *service.CategoryService
	logger     *zap.Logger
}

func NewCategoryHandler(categories *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logger,
	}
}

// List godoc
// @Summary List categories
// @Description Global categories plus the user's own, ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Security Bearer
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cats, err := h.categories.ListForUser(c.Context(), userID)
	if err != nil {
		h.logger.Error("Category listing failed", zap.Error(err))
		return respondServiceError(c, err)
	}

	return c.JSON(dto.NewCategoryListResponse(cats))
}

// Create godoc
// @Summary Create a user category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	cat, err := h.categories.Create(c.Context(), userID, req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewCategoryResponse(cat))
}

// Delete godoc
// @Summary Delete a user category
// @Description Only the user's own non-predefined categories; referenced categories are rejected
// @Tags categories
// @Produce json
// @Param id path string true "Category id"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondServiceError(c, service.ErrCategoryNotFound)
	}

	if err := h.categories.Delete(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
