package handler

import (
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SearchHandler serves the autocomplete endpoints. Responses are bare JSON
// objects rather than the usual envelope.
type SearchHandler struct {
	uc     *usecase.SearchUsecase
	logger *zap.Logger
}

func NewSearchHandler(uc *usecase.SearchUsecase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{uc: uc, logger: logger}
}

func (h *SearchHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/search-company", h.Companies)
	app.Get("/api/search-jobtypes", h.JobTypes)
}

func (h *SearchHandler) Companies(c *fiber.Ctx) error {
	results, err := h.uc.Companies(c.UserContext(), c.Query("q"))
	if err != nil {
		h.logger.Warn("company search failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "company search is currently unavailable",
		})
	}
	return c.JSON(dto.SearchResponse{Results: results})
}

func (h *SearchHandler) JobTypes(c *fiber.Ctx) error {
	results, err := h.uc.JobTypes(c.UserContext(), c.Query("q"))
	if err != nil {
		h.logger.Error("job type search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "job type search failed",
		})
	}
	return c.JSON(dto.SearchResponse{Results: results})
}
