package handlers

import (
	"time"

	"finledger/internal/dto"
	"finledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InsightsHandler struct {
	insights *service.InsightsService
	logger   *zap.Logger
}

func NewInsightsHandler(insights *service.InsightsService, logger *zap.Logger) *InsightsHandler {
	return &InsightsHandler{
		insights: insights,
		logger:   logger,
	}
}

// Summary godoc
// @Summary Period summary
// @Description Income, expenses, net savings and savings rate. Accepts year/month or an explicit date_from/date_to range; defaults to the current month.
// @Tags insights
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month 1-12"
// @Param date_from query string false "Inclusive lower bound (YYYY-MM-DD), overrides year/month together with date_to"
// @Param date_to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Security Bearer
// @Router /insights/summary [get]
func (h *InsightsHandler) Summary(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if from, to, ok := dateRange(c); ok {
		summary, err := h.insights.RangeSummary(c.Context(), userID, from, to)
		if err != nil {
			h.logger.Error("Range summary failed", zap.Error(err))
			return respondServiceError(c, err)
		}
		return c.JSON(dto.NewSummaryResponse(summary))
	}

	year, month := yearMonth(c)
	summary, err := h.insights.MonthlySummary(c.Context(), userID, year, month)
	if err != nil {
		h.logger.Error("Monthly summary failed", zap.Error(err))
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewSummaryResponse(summary))
}

// Breakdown godoc
// @Summary Expenses by category
// @Description Per-category expense totals with percent of total spending, largest first. Same period selection as the summary.
// @Tags insights
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month 1-12"
// @Param date_from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} dto.BreakdownEntryResponse
// @Security Bearer
// @Router /insights/breakdown [get]
func (h *InsightsHandler) Breakdown(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	from, to, ok := dateRange(c)
	if !ok {
		year, month := yearMonth(c)
		from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, -1)
	}

	entries, err := h.insights.CategoryBreakdown(c.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Category breakdown failed", zap.Error(err))
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewBreakdownResponse(entries))
}

// dateRange reads an explicit date_from/date_to pair; both must parse for
// the range to apply.
func dateRange(c *fiber.Ctx) (time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", c.Query("date_from"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", c.Query("date_to"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
