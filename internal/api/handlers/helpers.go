package handlers

import (
	"errors"
	"time"

	"finledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserID reads the owner identity placed in the context by the auth
// middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userID").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user identity")
	}
	return id, nil
}

// yearMonth reads year/month query params, defaulting to the current month.
func yearMonth(c *fiber.Ctx) (int, int) {
	now := time.Now().UTC()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	return year, month
}

// validationStatus maps a service validation error to an HTTP status:
// not-found rejections become 404, the rest 400.
func validationStatus(err error) int {
	if errors.Is(err, service.ErrTransactionNotFound) || errors.Is(err, service.ErrCategoryNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

// respondServiceError renders a service error: validation failures carry
// their user-facing message, anything else is a generic 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var verr service.ValidationError
	if errors.As(err, &verr) {
		return c.Status(validationStatus(err)).JSON(fiber.Map{
			"error": verr.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
