package handler

import (
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/response"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const msgNoApplications = "まだ応募情報がありません"

type ApplicationHandler struct {
	uc     *usecase.ApplicationUsecase
	logger *zap.Logger
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, logger: logger}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/", auth, h.List)
	app.Post("/application/new", auth, h.Create)
	app.Get("/application/:id", auth, h.Detail)
	app.Post("/application/:id/update", auth, h.Update)
	app.Post("/application/:id/delete", auth, h.Delete)
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", response.DefaultPageSize)

	data, pagination, err := h.uc.List(c.UserContext(), middleware.UserID(c), page, pageSize)
	if err != nil {
		return handleError(c, h.logger, err, "failed to get applications")
	}

	message := "Success get applications"
	if pagination.TotalItems == 0 {
		message = msgNoApplications
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

func (h *ApplicationHandler) Detail(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to get application")
	}
	data, err := h.uc.Get(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return handleError(c, h.logger, err, "failed to get application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get application",
		Data:    data,
	})
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var req dto.JobApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	app, err := h.uc.Create(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to create application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create application",
		Data:    app,
	})
}

func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to update application")
	}
	var req dto.JobApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	app, err := h.uc.Update(c.UserContext(), middleware.UserID(c), id, req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to update application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update application",
		Data:    app,
	})
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to delete application")
	}
	if err := h.uc.Delete(c.UserContext(), middleware.UserID(c), id); err != nil {
		return handleError(c, h.logger, err, "failed to delete application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete application",
	})
}
