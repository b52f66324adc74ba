package handler

import (
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InterviewLogHandler struct {
	uc     *usecase.InterviewLogUsecase
	logger *zap.Logger
}

func NewInterviewLogHandler(uc *usecase.InterviewLogUsecase, logger *zap.Logger) *InterviewLogHandler {
	return &InterviewLogHandler{uc: uc, logger: logger}
}

func (h *InterviewLogHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/application/:job_app_id/logs", auth, h.List)
	app.Post("/application/:job_app_id/log/new", auth, h.Create)
	app.Post("/log/:id/update", auth, h.Update)
	app.Post("/log/:id/delete", auth, h.Delete)
}

func (h *InterviewLogHandler) List(c *fiber.Ctx) error {
	appID, err := parseID(c, "job_app_id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to get interview logs")
	}
	logs, err := h.uc.List(c.UserContext(), middleware.UserID(c), appID)
	if err != nil {
		return handleError(c, h.logger, err, "failed to get interview logs")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview logs",
		Data:    logs,
	})
}

func (h *InterviewLogHandler) Create(c *fiber.Ctx) error {
	appID, err := parseID(c, "job_app_id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to create interview log")
	}
	var req dto.InterviewLogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	log, err := h.uc.Create(c.UserContext(), middleware.UserID(c), appID, req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to create interview log")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create interview log",
		Data:    log,
	})
}

func (h *InterviewLogHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to update interview log")
	}
	var req dto.InterviewLogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	log, err := h.uc.Update(c.UserContext(), middleware.UserID(c), id, req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to update interview log")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update interview log",
		Data:    log,
	})
}

func (h *InterviewLogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to delete interview log")
	}
	log, err := h.uc.Delete(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return handleError(c, h.logger, err, "failed to delete interview log")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete interview log",
		Data:    fiber.Map{"job_application_id": log.JobApplicationID},
	})
}
