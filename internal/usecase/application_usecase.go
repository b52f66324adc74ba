package usecase

import (
	"context"
	"time"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/response"
	"github.com/fadilmartias/job-tracker/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationUsecase struct {
	appRepo *repository.JobApplicationRepository
	storage service.FileStorage
	logger  *zap.Logger
	now     func() time.Time
}

func NewApplicationUsecase(appRepo *repository.JobApplicationRepository, storage service.FileStorage, logger *zap.Logger) *ApplicationUsecase {
	return &ApplicationUsecase{appRepo: appRepo, storage: storage, logger: logger, now: time.Now}
}

// List returns one page of the owner's applications, newest first, and every
// application whose next action is due today or later.
func (uc *ApplicationUsecase) List(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*dto.ApplicationListResponse, *response.Pagination, error) {
	page, pageSize = response.NormalizePage(page, pageSize)

	apps, total, err := uc.appRepo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	now := uc.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	upcoming, err := uc.appRepo.UpcomingByOwner(ctx, ownerID, today)
	if err != nil {
		return nil, nil, err
	}

	if apps == nil {
		apps = []model.JobApplication{}
	}
	if upcoming == nil {
		upcoming = []model.JobApplication{}
	}
	return &dto.ApplicationListResponse{
		Applications:   apps,
		UpcomingEvents: upcoming,
	}, response.NewPagination(page, pageSize, total, len(apps)), nil
}

func (uc *ApplicationUsecase) Get(ctx context.Context, ownerID, id uuid.UUID) (*dto.ApplicationDetailResponse, error) {
	app, err := uc.appRepo.FindDetailByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return &dto.ApplicationDetailResponse{
		Application:   app,
		JobTypesInput: dto.JobTypesInputOf(app),
		Statuses:      model.ApplicationStatuses,
	}, nil
}

func (uc *ApplicationUsecase) Create(ctx context.Context, ownerID uuid.UUID, req dto.JobApplicationRequest) (*model.JobApplication, error) {
	in, err := req.Validate()
	if err != nil {
		return nil, err
	}
	app := &model.JobApplication{}
	in.ApplyTo(app)
	if err := uc.appRepo.Create(ctx, ownerID, app, in.JobTypeNames); err != nil {
		return nil, err
	}
	return app, nil
}

func (uc *ApplicationUsecase) Update(ctx context.Context, ownerID, id uuid.UUID, req dto.JobApplicationRequest) (*model.JobApplication, error) {
	in, err := req.Validate()
	if err != nil {
		return nil, err
	}
	app, err := uc.appRepo.FindByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	in.ApplyTo(app)
	if err := uc.appRepo.Update(ctx, ownerID, app, in.JobTypeNames); err != nil {
		return nil, err
	}
	return app, nil
}

// Delete removes the application and its dependents, then the stored files of
// its documents. File cleanup failures are logged only.
func (uc *ApplicationUsecase) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	docs, err := uc.appRepo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		removeStoredFile(ctx, uc.storage, uc.logger, doc.FileRef)
	}
	return nil
}

func removeStoredFile(ctx context.Context, storage service.FileStorage, logger *zap.Logger, key string) {
	if storage == nil || key == "" {
		return
	}
	if err := storage.Delete(ctx, key); err != nil {
		logger.Warn("failed to remove stored file", zap.String("key", key), zap.Error(err))
	}
}
