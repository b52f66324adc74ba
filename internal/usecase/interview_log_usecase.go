package usecase

import (
	"context"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/google/uuid"
)

type InterviewLogUsecase struct {
	appRepo *repository.JobApplicationRepository
	logRepo *repository.InterviewLogRepository
}

func NewInterviewLogUsecase(appRepo *repository.JobApplicationRepository, logRepo *repository.InterviewLogRepository) *InterviewLogUsecase {
	return &InterviewLogUsecase{appRepo: appRepo, logRepo: logRepo}
}

func (uc *InterviewLogUsecase) Create(ctx context.Context, ownerID, appID uuid.UUID, req dto.InterviewLogRequest) (*model.InterviewLog, error) {
	app, err := uc.appRepo.FindByOwner(ctx, ownerID, appID)
	if err != nil {
		return nil, err
	}
	in, err := req.Validate()
	if err != nil {
		return nil, err
	}
	log := &model.InterviewLog{JobApplicationID: app.ID}
	in.ApplyTo(log)
	if err := uc.logRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (uc *InterviewLogUsecase) List(ctx context.Context, ownerID, appID uuid.UUID) ([]model.InterviewLog, error) {
	if _, err := uc.appRepo.FindByOwner(ctx, ownerID, appID); err != nil {
		return nil, err
	}
	return uc.logRepo.ListByApplication(ctx, ownerID, appID)
}

func (uc *InterviewLogUsecase) Update(ctx context.Context, ownerID, id uuid.UUID, req dto.InterviewLogRequest) (*model.InterviewLog, error) {
	log, err := uc.logRepo.FindByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	in, err := req.Validate()
	if err != nil {
		return nil, err
	}
	in.ApplyTo(log)
	if err := uc.logRepo.Update(ctx, ownerID, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (uc *InterviewLogUsecase) Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.InterviewLog, error) {
	return uc.logRepo.Delete(ctx, ownerID, id)
}
