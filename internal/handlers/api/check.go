package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"pecheck/internal/checker"
	"pecheck/internal/models"
	"pecheck/internal/wiki"
)

// Service runs one ownership check. *checker.Checker satisfies it.
type Service interface {
	Check(ctx context.Context, query string) (*models.Result, error)
}

// CheckHandler exposes ownership checks as a JSON API.
type CheckHandler struct {
	svc Service
}

// NewCheckHandler creates a new API check handler.
func NewCheckHandler(svc Service) *CheckHandler {
	return &CheckHandler{svc: svc}
}

// Check runs a full ownership check for ?q= and returns the result as JSON.
func (h *CheckHandler) Check(c fiber.Ctx) error {
	query := c.Query("q", "")

	result, err := h.svc.Check(c.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, checker.ErrEmptyQuery):
			return jsonError(c, fiber.StatusBadRequest, "query parameter 'q' is required")
		case errors.Is(err, wiki.ErrNotFound):
			return jsonError(c, fiber.StatusNotFound, "no article found for query")
		case errors.Is(err, wiki.ErrUnavailable):
			return jsonError(c, fiber.StatusServiceUnavailable, "lookup temporarily unavailable, try again")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "check failed")
		}
	}

	return jsonSuccess(c, result)
}
