package repository

import (
	"context"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntrySheetRepository struct {
	db *gorm.DB
}

func NewEntrySheetRepository(db *gorm.DB) *EntrySheetRepository {
	return &EntrySheetRepository{db}
}

func (r *EntrySheetRepository) Create(ctx context.Context, es *model.EntrySheet) error {
	return translate(r.db.WithContext(ctx).Omit("JobApplication").Create(es).Error)
}

// FindByOwner loads the entry sheet together with its parent application.
func (r *EntrySheetRepository) FindByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.EntrySheet, error) {
	var es model.EntrySheet
	err := r.db.WithContext(ctx).
		Preload("JobApplication").
		Where("id = ? AND job_application_id IN (?)", id, ownedApplicationIDs(r.db, ownerID)).
		First(&es).Error
	if err != nil {
		return nil, translate(err)
	}
	return &es, nil
}

func (r *EntrySheetRepository) Update(ctx context.Context, ownerID uuid.UUID, es *model.EntrySheet) error {
	return r.updateFields(ctx, ownerID, es, "Question", "Answer")
}

func (r *EntrySheetRepository) SaveDraft(ctx context.Context, ownerID uuid.UUID, es *model.EntrySheet) error {
	return r.updateFields(ctx, ownerID, es, "AIDraft")
}

func (r *EntrySheetRepository) updateFields(ctx context.Context, ownerID uuid.UUID, es *model.EntrySheet, fields ...string) error {
	res := r.db.WithContext(ctx).
		Model(&model.EntrySheet{}).
		Where("id = ? AND job_application_id IN (?)", es.ID, ownedApplicationIDs(r.db, ownerID)).
		Select(fields).
		Updates(es)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EntrySheetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.EntrySheet, error) {
	es, err := r.FindByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.EntrySheet{}, "id = ?", es.ID).Error; err != nil {
		return nil, err
	}
	return es, nil
}
