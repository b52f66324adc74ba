package handler

import (
	"time"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	uc         *usecase.AuthUsecase
	authConfig *config.AuthConfig
	appConfig  *config.AppConfig
	logger     *zap.Logger
}

func NewAuthHandler(uc *usecase.AuthUsecase, authConfig *config.AuthConfig, appConfig *config.AppConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, authConfig: authConfig, appConfig: appConfig, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/signup", middleware.RateLimiter(10, time.Minute), h.SignUp)
	app.Get(middleware.LoginPath, h.LoginPage)
	app.Post(middleware.LoginPath, middleware.RateLimiter(10, time.Minute), h.Login)
	app.Post("/logout", h.Logout)
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.uc.SignUp(c.UserContext(), req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to sign up")
	}
	h.setTokenCookie(c, res.Token)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success sign up",
		Data:    res,
	})
}

// LoginPage is where unauthenticated requests are redirected. It echoes the
// sanitized post-login target so the client can resubmit it with POST /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Log in required",
		Meta:    fiber.Map{"next": safeNext(c.Query("next"))},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.uc.Login(c.UserContext(), req)
	if err != nil {
		return handleError(c, h.logger, err, "failed to log in")
	}
	h.setTokenCookie(c, res.Token)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success log in",
		Data:    res,
		Meta:    fiber.Map{"next": safeNext(c.Query("next"))},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.TokenCookie)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success log out",
	})
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.authConfig.TokenTTL),
		HTTPOnly: true,
		Secure:   h.appConfig.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// safeNext only allows same-site relative paths as a post-login target.
func safeNext(next string) string {
	if len(next) == 0 || next[0] != '/' || (len(next) > 1 && (next[1] == '/' || next[1] == '\\')) {
		return "/"
	}
	return next
}
