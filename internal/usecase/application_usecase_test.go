package usecase_test

import (
	"context"
	"testing"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/testutil"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApplicationUsecase_CreateUpdateTags(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecase.NewApplicationUsecase(repository.NewJobApplicationRepository(db), newMemoryStorage(), zap.NewNop())
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")

	app, err := uc.Create(ctx, alice.ID, dto.JobApplicationRequest{
		CompanyName:   "Acme",
		JobTitle:      "SRE",
		JobTypesInput: "x, y",
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, alice.ID, app.ID, dto.JobApplicationRequest{
		CompanyName:   "Acme",
		JobTitle:      "SRE",
		Status:        string(model.StatusApplied),
		JobTypesInput: "a, b, b, ",
	})
	require.NoError(t, err)

	detail, err := uc.Get(ctx, alice.ID, app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApplied, detail.Application.Status)
	assert.Equal(t, "a, b", detail.JobTypesInput)

	_, err = uc.Update(ctx, alice.ID, app.ID, dto.JobApplicationRequest{
		CompanyName: "Acme",
		JobTitle:    "SRE",
	})
	require.NoError(t, err)
	detail, err = uc.Get(ctx, alice.ID, app.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Application.JobTypes)
	assert.Equal(t, model.StatusApplied, detail.Application.Status, "blank status keeps the stored one")
}

func TestApplicationUsecase_InvalidFormWritesNothing(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecase.NewApplicationUsecase(repository.NewJobApplicationRepository(db), newMemoryStorage(), zap.NewNop())
	alice := testutil.CreateUser(t, db, "alice")

	_, err := uc.Create(context.Background(), alice.ID, dto.JobApplicationRequest{JobTypesInput: "a"})
	require.Error(t, err)

	var apps, tags int64
	db.Model(&model.JobApplication{}).Count(&apps)
	db.Model(&model.JobType{}).Count(&tags)
	assert.Zero(t, apps)
	assert.Zero(t, tags)
}

func TestApplicationUsecase_CrossUserIsNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecase.NewApplicationUsecase(repository.NewJobApplicationRepository(db), newMemoryStorage(), zap.NewNop())
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	app := testutil.CreateApplication(t, db, alice, "Acme")

	_, err := uc.Get(ctx, bob.ID, app.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = uc.Update(ctx, bob.ID, app.ID, dto.JobApplicationRequest{CompanyName: "X", JobTitle: "Y"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, bob.ID, app.ID), repository.ErrNotFound)

	_, err = uc.Get(ctx, alice.ID, app.ID)
	assert.NoError(t, err)
}

func TestApplicationUsecase_DeleteRemovesStoredFiles(t *testing.T) {
	db := testutil.NewDB(t)
	storage := newMemoryStorage()
	uc := usecase.NewApplicationUsecase(repository.NewJobApplicationRepository(db), storage, zap.NewNop())
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	app := testutil.CreateApplication(t, db, alice, "Acme")

	require.NoError(t, db.Create(&model.Document{JobApplicationID: app.ID, Name: "CV", FileRef: "documents/2025/01/a-cv.pdf"}).Error)

	require.NoError(t, uc.Delete(ctx, alice.ID, app.ID))
	assert.Equal(t, []string{"documents/2025/01/a-cv.pdf"}, storage.deleted)

	var docs int64
	db.Model(&model.Document{}).Count(&docs)
	assert.Zero(t, docs)
}

func TestApplicationUsecase_List(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecase.NewApplicationUsecase(repository.NewJobApplicationRepository(db), newMemoryStorage(), zap.NewNop())
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")

	data, pagination, err := uc.List(ctx, alice.ID, 1, 20)
	require.NoError(t, err)
	assert.NotNil(t, data.Applications)
	assert.Empty(t, data.Applications)
	assert.Empty(t, data.UpcomingEvents)
	assert.Zero(t, pagination.TotalItems)

	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, alice.ID, dto.JobApplicationRequest{
			CompanyName:    "Acme",
			JobTitle:       "SRE",
			NextActionDate: "2999-01-01",
		})
		require.NoError(t, err)
	}
	_, err = uc.Create(ctx, alice.ID, dto.JobApplicationRequest{
		CompanyName:    "Old",
		JobTitle:       "SRE",
		NextActionDate: "2000-01-01",
	})
	require.NoError(t, err)

	data, pagination, err = uc.List(ctx, alice.ID, 2, 3)
	require.NoError(t, err)
	assert.Len(t, data.Applications, 1)
	assert.Equal(t, int64(4), pagination.TotalItems)
	assert.Equal(t, int64(2), pagination.TotalPages)
	assert.Len(t, data.UpcomingEvents, 3)
}
