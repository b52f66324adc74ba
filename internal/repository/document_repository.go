package repository

import (
	"context"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db}
}

// Create expects doc.JobApplicationID to come from an owner-scoped lookup.
func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	return translate(r.db.WithContext(ctx).Create(doc).Error)
}

func (r *DocumentRepository) FindByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.Document, error) {
	var doc model.Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND job_application_id IN (?)", id, ownedApplicationIDs(r.db, ownerID)).
		First(&doc).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (r *DocumentRepository) ListByApplication(ctx context.Context, ownerID, appID uuid.UUID) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).
		Where("job_application_id = ? AND job_application_id IN (?)", appID, ownedApplicationIDs(r.db, ownerID)).
		Order("uploaded_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.Document, error) {
	doc, err := r.FindByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}
