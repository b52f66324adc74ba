package handler

import (
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	uc     *usecase.ProfileUsecase
	logger *zap.Logger
}

func NewProfileHandler(uc *usecase.ProfileUsecase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/profile", auth, h.Get)
	app.Post("/profile", auth, h.Update)
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.Get(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return handleError(c, h.logger, err, "failed to get profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get profile",
		Data:    profile,
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	profile, err := h.uc.Update(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to update profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update profile",
		Data:    profile,
	})
}
