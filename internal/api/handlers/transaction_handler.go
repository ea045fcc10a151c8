package handlers

import (
	"finledger/internal/dto"
	"finledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	transactions *service.TransactionService
	logger       *zap.Logger
}

func NewTransactionHandler(transactions *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		logger:       logger,
	}
}

// List godoc
// @Summary List transactions
// @Description Filtered, paginated listing of the user's transactions, newest first
// @Tags transactions
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 20)"
// @Param date_from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param category_id query string false "Category id"
// @Param type query string false "income or expense"
// @Success 200 {object} dto.TransactionListResponse
// @Security Bearer
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	result, err := h.transactions.List(c.Context(), userID, service.ListFilter{
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		CategoryID: c.Query("category_id"),
		Type:       c.Query("type"),
		Page:       c.QueryInt("page", 1),
		PerPage:    c.QueryInt("per_page", 0),
	})
	if err != nil {
		h.logger.Error("Transaction listing failed", zap.Error(err))
		return respondServiceError(c, err)
	}

	return c.JSON(dto.NewTransactionListResponse(
		result.Items, result.Total, result.TotalPages, result.Page, result.PerPage))
}

// Create godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tx, err := h.transactions.Create(c.Context(), userID, service.TransactionInput{
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// Get godoc
// @Summary Get a transaction by id
// @Description Direct lookup; also resolves soft-deleted records for audit
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction id"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondServiceError(c, service.ErrTransactionNotFound)
	}

	tx, err := h.transactions.Get(c.Context(), userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

// Update godoc
// @Summary Update a transaction
// @Description Full replacement of mutable fields; omitted type and category keep their current values
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction id"
// @Param request body dto.TransactionRequest true "Transaction"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondServiceError(c, service.ErrTransactionNotFound)
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tx, err := h.transactions.Update(c.Context(), userID, id, service.TransactionInput{
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

// Delete godoc
// @Summary Soft-delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondServiceError(c, service.ErrTransactionNotFound)
	}

	deleted, err := h.transactions.SoftDelete(c.Context(), userID, id)
	if err != nil {
		h.logger.Error("Transaction delete failed", zap.Error(err))
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondServiceError(c, service.ErrTransactionNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Recent godoc
// @Summary Recent transactions
// @Description Newest active transactions for dashboard widgets
// @Tags transactions
// @Produce json
// @Param limit query int false "Max records (default 10)"
// @Success 200 {array} dto.TransactionResponse
// @Security Bearer
// @Router /transactions/recent [get]
func (h *TransactionHandler) Recent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.transactions.Recent(c.Context(), userID, c.QueryInt("limit", 10))
	if err != nil {
		h.logger.Error("Recent transactions failed", zap.Error(err))
		return respondServiceError(c, err)
	}

	resp := make([]dto.TransactionResponse, 0, len(items))
	for _, tx := range items {
		resp = append(resp, dto.NewTransactionResponse(tx))
	}
	return c.JSON(resp)
}
