package handler

import (
	"time"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DraftHandler answers 200 even when generation fails; the failure is carried
// in the draft text.
type DraftHandler struct {
	uc     *usecase.DraftUsecase
	logger *zap.Logger
}

func NewDraftHandler(uc *usecase.DraftUsecase, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{uc: uc, logger: logger}
}

func (h *DraftHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Post("/application/:id/generate_draft", auth, middleware.RateLimiter(5, time.Minute), h.CoverLetter)
	app.Post("/es/:id/generate", auth, middleware.RateLimiter(5, time.Minute), h.EntrySheet)
}

func (h *DraftHandler) CoverLetter(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to generate draft")
	}
	var req dto.DraftRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, err)
		}
	}
	draft, err := h.uc.GenerateCoverLetter(c.UserContext(), middleware.UserID(c), id, req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to generate draft")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate draft",
		Data:    draft,
	})
}

func (h *DraftHandler) EntrySheet(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to generate draft")
	}
	draft, err := h.uc.GenerateEntrySheetDraft(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return handleError(c, h.logger, err, "failed to generate draft")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate draft",
		Data:    draft,
	})
}
