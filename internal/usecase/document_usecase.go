package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"time"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/service"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentUsecase struct {
	appRepo *repository.JobApplicationRepository
	docRepo *repository.DocumentRepository
	storage service.FileStorage
	logger  *zap.Logger
	now     func() time.Time
}

func NewDocumentUsecase(appRepo *repository.JobApplicationRepository, docRepo *repository.DocumentRepository, storage service.FileStorage, logger *zap.Logger) *DocumentUsecase {
	return &DocumentUsecase{appRepo: appRepo, docRepo: docRepo, storage: storage, logger: logger, now: time.Now}
}

// Upload stores file under the owner's application appID. PDFs additionally get
// their page count and text layer recorded when extraction succeeds.
func (uc *DocumentUsecase) Upload(ctx context.Context, ownerID, appID uuid.UUID, req dto.DocumentRequest, file *multipart.FileHeader) (*model.Document, error) {
	app, err := uc.appRepo.FindByOwner(ctx, ownerID, appID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(file); err != nil {
		return nil, err
	}

	data, err := readUpload(file)
	if err != nil {
		return nil, err
	}

	contentType := file.Header.Get("Content-Type")
	doc := &model.Document{
		JobApplicationID: app.ID,
		Name:             req.Name,
		FileRef:          service.DocumentKey(uc.now(), file.Filename),
		ContentType:      contentType,
		Size:             int64(len(data)),
	}

	if util.IsPDF(file.Filename, contentType) {
		extracted, err := util.ExtractPDFText(data)
		if err != nil {
			uc.logger.Warn("failed to extract PDF text",
				zap.String("file", path.Base(doc.FileRef)), zap.Error(err))
		} else {
			doc.PageCount = extracted.PageCount
			doc.ExtractedText = extracted.Text
		}
	}

	if err := uc.storage.Save(ctx, doc.FileRef, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("cannot save uploaded file: %w", err)
	}
	if err := uc.docRepo.Create(ctx, doc); err != nil {
		removeStoredFile(ctx, uc.storage, uc.logger, doc.FileRef)
		return nil, err
	}
	return doc, nil
}

// List returns the documents of one of the owner's applications, newest first.
func (uc *DocumentUsecase) List(ctx context.Context, ownerID, appID uuid.UUID) ([]model.Document, error) {
	if _, err := uc.appRepo.FindByOwner(ctx, ownerID, appID); err != nil {
		return nil, err
	}
	return uc.docRepo.ListByApplication(ctx, ownerID, appID)
}

// Open returns the document and a reader over its stored bytes. The caller
// closes the reader.
func (uc *DocumentUsecase) Open(ctx context.Context, ownerID, id uuid.UUID) (*model.Document, io.ReadCloser, error) {
	doc, err := uc.docRepo.FindByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := uc.storage.Open(ctx, doc.FileRef)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open stored file: %w", err)
	}
	return doc, rc, nil
}

// Delete removes the document row and, best effort, its stored file.
func (uc *DocumentUsecase) Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.Document, error) {
	doc, err := uc.docRepo.Delete(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	removeStoredFile(ctx, uc.storage, uc.logger, doc.FileRef)
	return doc, nil
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot read uploaded file: %w", err)
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, dto.MaxDocumentSize+1))
}
