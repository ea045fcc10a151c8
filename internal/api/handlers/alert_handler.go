package handlers

import (
	"finledger/internal/dto"
	"finledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AlertHandler struct {
	alerts *service.AlertService
	logger *zap.Logger
}

func NewAlertHandler(alerts *service.AlertService, logger *zap.Logger) *AlertHandler {
	return &AlertHandler{
		alerts: alerts,
		logger: logger,
	}
}

// List godoc
// @Summary Alerts for a month
// @Description Threshold alerts computed fresh from the month's aggregates; nothing is persisted. Defaults to the current month.
// @Tags alerts
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month 1-12"
// @Success 200 {array} dto.AlertResponse
// @Security Bearer
// @Router /alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	year, month := yearMonth(c)
	alerts, err := h.alerts.Generate(c.Context(), userID, year, month)
	if err != nil {
		h.logger.Error("Alert generation failed", zap.Error(err))
		return respondServiceError(c, err)
	}

	return c.JSON(dto.NewAlertListResponse(alerts))
}
