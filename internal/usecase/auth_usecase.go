package usecase

import (
	"context"
	"errors"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/util"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	userRepo   *repository.UserRepository
	authConfig *config.AuthConfig
	logger     *zap.Logger
}

func NewAuthUsecase(userRepo *repository.UserRepository, authConfig *config.AuthConfig, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, authConfig: authConfig, logger: logger}
}

// SignUp creates the user together with an empty profile and signs them in.
func (uc *AuthUsecase) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, usernameTaken()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.CreateWithProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, usernameTaken()
		}
		return nil, err
	}
	uc.logger.Info("user signed up", zap.String("user_id", user.ID.String()))

	return uc.issue(user)
}

func (uc *AuthUsecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return uc.issue(user)
}

func (uc *AuthUsecase) issue(user *model.User) (*dto.AuthResponse, error) {
	token, err := util.GenerateJWT(uc.authConfig.JWTSecret, user.ID, uc.authConfig.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:    token,
		UserID:   user.ID.String(),
		Username: user.Username,
	}, nil
}

func usernameTaken() error {
	return util.NewFormError(ErrUsernameTaken.Error(), map[string]string{
		"username": "A user with that username already exists.",
	})
}
