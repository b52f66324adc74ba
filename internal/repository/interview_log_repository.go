package repository

import (
	"context"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewLogRepository struct {
	db *gorm.DB
}

func NewInterviewLogRepository(db *gorm.DB) *InterviewLogRepository {
	return &InterviewLogRepository{db}
}

func (r *InterviewLogRepository) Create(ctx context.Context, log *model.InterviewLog) error {
	return translate(r.db.WithContext(ctx).Create(log).Error)
}

func (r *InterviewLogRepository) FindByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.InterviewLog, error) {
	var log model.InterviewLog
	err := r.db.WithContext(ctx).
		Where("id = ? AND job_application_id IN (?)", id, ownedApplicationIDs(r.db, ownerID)).
		First(&log).Error
	if err != nil {
		return nil, translate(err)
	}
	return &log, nil
}

// ListByApplication returns the logs of one application, newest interview first.
func (r *InterviewLogRepository) ListByApplication(ctx context.Context, ownerID, appID uuid.UUID) ([]model.InterviewLog, error) {
	var logs []model.InterviewLog
	err := r.db.WithContext(ctx).
		Where("job_application_id = ? AND job_application_id IN (?)", appID, ownedApplicationIDs(r.db, ownerID)).
		Order("interview_date DESC").
		Find(&logs).Error
	return logs, err
}

func (r *InterviewLogRepository) Update(ctx context.Context, ownerID uuid.UUID, log *model.InterviewLog) error {
	res := r.db.WithContext(ctx).
		Model(&model.InterviewLog{}).
		Where("id = ? AND job_application_id IN (?)", log.ID, ownedApplicationIDs(r.db, ownerID)).
		Select("Stage", "InterviewDate", "QuestionsAsked", "MyAnswers", "Reflection").
		Updates(log)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InterviewLogRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.InterviewLog, error) {
	log, err := r.FindByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}
