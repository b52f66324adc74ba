package usecase

import (
	"context"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/google/uuid"
)

type ProfileUsecase struct {
	profileRepo *repository.ProfileRepository
}

func NewProfileUsecase(profileRepo *repository.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo}
}

func (uc *ProfileUsecase) Get(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return uc.profileRepo.FindByUserID(ctx, userID)
}

func (uc *ProfileUsecase) Update(ctx context.Context, userID uuid.UUID, req dto.ProfileRequest) (*model.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(profile)
	if err := uc.profileRepo.Update(ctx, userID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
