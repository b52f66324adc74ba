package handler

import (
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	uc     *usecase.DocumentUsecase
	logger *zap.Logger
}

func NewDocumentHandler(uc *usecase.DocumentUsecase, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{uc: uc, logger: logger}
}

func (h *DocumentHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/application/:id/documents", auth, h.List)
	app.Post("/application/:id/add_document", auth, h.Upload)
	app.Get("/document/:id/download", auth, h.Download)
	app.Post("/document/:id/delete", auth, h.Delete)
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
	appID, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to get documents")
	}
	docs, err := h.uc.List(c.UserContext(), middleware.UserID(c), appID)
	if err != nil {
		return handleError(c, h.logger, err, "failed to get documents")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get documents",
		Data:    docs,
	})
}

func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	appID, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to upload document")
	}
	var req dto.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	// a missing file is reported by validation alongside the other fields
	file, _ := c.FormFile("uploaded_file")

	doc, err := h.uc.Upload(c.UserContext(), middleware.UserID(c), appID, req, file)
	if err != nil {
		return handleError(c, h.logger, err, "failed to upload document")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success upload document",
		Data:    doc,
	})
}

func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to download document")
	}
	doc, rc, err := h.uc.Open(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return handleError(c, h.logger, err, "failed to download document")
	}

	c.Attachment(doc.Name)
	if doc.ContentType != "" {
		c.Set(fiber.HeaderContentType, doc.ContentType)
	}
	return c.SendStream(rc, int(doc.Size))
}

func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "failed to delete document")
	}
	doc, err := h.uc.Delete(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return handleError(c, h.logger, err, "failed to delete document")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete document",
		Data:    fiber.Map{"job_application_id": doc.JobApplicationID},
	})
}
