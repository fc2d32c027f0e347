package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"pecheck/internal/checker"
	"pecheck/internal/config"
	"pecheck/internal/models"
	"pecheck/internal/wiki"
)

// Service runs one ownership check. *checker.Checker satisfies it.
type Service interface {
	Check(ctx context.Context, query string) (*models.Result, error)
}

// CheckHandler handles the query form and ownership check pages.
type CheckHandler struct {
	svc Service
	cfg *config.Config
}

// NewCheckHandler creates a new check handler.
func NewCheckHandler(svc Service, cfg *config.Config) *CheckHandler {
	return &CheckHandler{svc: svc, cfg: cfg}
}

// Index renders the home page with the company name form.
func (h *CheckHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{}, h.cfg))
}

// Check runs a full ownership check for ?q= and renders the result.
// For HTMX requests only the result partial is returned.
func (h *CheckHandler) Check(c fiber.Ctx) error {
	query := c.Query("q", "")

	result, err := h.svc.Check(c.Context(), query)
	if err != nil {
		return h.renderCheckError(c, query, err)
	}

	if c.Get("HX-Request") == "true" {
		return c.Render("partials/result", fiber.Map{"Result": result}, "")
	}

	return c.Render("check", MergeBranding(fiber.Map{
		"Result": result,
		"Query":  query,
	}, h.cfg))
}

func (h *CheckHandler) renderCheckError(c fiber.Ctx, query string, err error) error {
	var message string
	var status int

	switch {
	case errors.Is(err, checker.ErrEmptyQuery):
		status = fiber.StatusBadRequest
		message = "Please enter a company name."
	case errors.Is(err, wiki.ErrNotFound):
		status = fiber.StatusOK
		message = "No Wikipedia article found for '" + query + "'."
	case errors.Is(err, wiki.ErrUnavailable):
		status = fiber.StatusServiceUnavailable
		message = "Couldn't reach Wikipedia. Please try again in a minute."
	default:
		return err
	}

	if c.Get("HX-Request") == "true" {
		return htmxError(c, message)
	}

	return c.Status(status).Render("check", MergeBranding(fiber.Map{
		"Query":   query,
		"Message": message,
	}, h.cfg))
}
