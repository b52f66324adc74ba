package handler

import (
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type EntrySheetHandler struct {
	uc     *usecase.EntrySheetUsecase
	logger *zap.Logger
}

func NewEntrySheetHandler(uc *usecase.EntrySheetUsecase, logger *zap.Logger) *EntrySheetHandler {
	return &EntrySheetHandler{uc: uc, logger: logger}
}

func (h *EntrySheetHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Post("/application/:job_app_id/es/new", auth, h.Create)
	app.Get("/es/:id", auth, h.Detail)
	app.Post("/es/:id/update", auth, h.Update)
	app.Post("/es/:id/delete", auth, h.Delete)
}

func (h *EntrySheetHandler) Create(c *fiber.Ctx) error {
	appID, err := parseID(c, "job_app_id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to create entry sheet")
	}
	var req dto.EntrySheetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	es, err := h.uc.Create(c.UserContext(), middleware.UserID(c), appID, req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to create entry sheet")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create entry sheet",
		Data:    es,
	})
}

func (h *EntrySheetHandler) Detail(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to get entry sheet")
	}
	es, err := h.uc.Get(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return handleError(c, h.logger, err, "failed to get entry sheet")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get entry sheet",
		Data:    es,
	})
}

func (h *EntrySheetHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to update entry sheet")
	}
	var req dto.EntrySheetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	es, err := h.uc.Update(c.UserContext(), middleware.UserID(c), id, req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to update entry sheet")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update entry sheet",
		Data:    es,
	})
}

func (h *EntrySheetHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to delete entry sheet")
	}
	es, err := h.uc.Delete(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return handleError(c, h.logger, err, "failed to delete entry sheet")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete entry sheet",
		Data:    fiber.Map{"job_application_id": es.JobApplicationID},
	})
}
