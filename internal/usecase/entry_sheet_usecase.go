package usecase

import (
	"context"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/google/uuid"
)

type EntrySheetUsecase struct {
	appRepo *repository.JobApplicationRepository
	esRepo  *repository.EntrySheetRepository
}

func NewEntrySheetUsecase(appRepo *repository.JobApplicationRepository, esRepo *repository.EntrySheetRepository) *EntrySheetUsecase {
	return &EntrySheetUsecase{appRepo: appRepo, esRepo: esRepo}
}

func (uc *EntrySheetUsecase) Create(ctx context.Context, ownerID, appID uuid.UUID, req dto.EntrySheetRequest) (*model.EntrySheet, error) {
	app, err := uc.appRepo.FindByOwner(ctx, ownerID, appID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	es := &model.EntrySheet{JobApplicationID: app.ID}
	req.ApplyTo(es)
	if err := uc.esRepo.Create(ctx, es); err != nil {
		return nil, err
	}
	return es, nil
}

func (uc *EntrySheetUsecase) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.EntrySheet, error) {
	return uc.esRepo.FindByOwner(ctx, ownerID, id)
}

func (uc *EntrySheetUsecase) Update(ctx context.Context, ownerID, id uuid.UUID, req dto.EntrySheetRequest) (*model.EntrySheet, error) {
	es, err := uc.esRepo.FindByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.ApplyTo(es)
	if err := uc.esRepo.Update(ctx, ownerID, es); err != nil {
		return nil, err
	}
	return es, nil
}

func (uc *EntrySheetUsecase) Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.EntrySheet, error) {
	return uc.esRepo.Delete(ctx, ownerID, id)
}
