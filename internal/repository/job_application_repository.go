package repository

import (
	"context"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var applicationFields = []string{
	"CompanyName", "JobTitle", "Status", "NextAction", "NextActionDate",
	"CorporatePhilosophy", "IdealCandidate", "JobDescription", "Notes",
}

type JobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db}
}

func (r *JobApplicationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]model.JobApplication, int64, error) {
	var (
		apps  []model.JobApplication
		total int64
	)
	q := r.db.WithContext(ctx).
		Model(&model.JobApplication{}).
		Where("user_id = ?", ownerID).
		Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("JobTypes").
		Order("applied_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&apps).Error
	return apps, total, err
}

// UpcomingByOwner lists applications whose next action falls on or after from.
func (r *JobApplicationRepository) UpcomingByOwner(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND next_action_date >= ?", ownerID, from).
		Order("next_action_date ASC").
		Find(&apps).Error
	return apps, err
}

func (r *JobApplicationRepository) FindByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&app).Error
	if err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

// FindDetailByOwner loads the application with every dependent collection.
func (r *JobApplicationRepository) FindDetailByOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.db.WithContext(ctx).
		Preload("JobTypes", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("uploaded_at DESC") }).
		Preload("InterviewLogs", func(db *gorm.DB) *gorm.DB { return db.Order("interview_date DESC") }).
		Preload("EntrySheets", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&app).Error
	if err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

// Create stores app for ownerID, ignoring whatever owner app already carries,
// and attaches the named job types.
func (r *JobApplicationRepository) Create(ctx context.Context, ownerID uuid.UUID, app *model.JobApplication, jobTypeNames []string) error {
	app.UserID = ownerID
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(app).Error; err != nil {
			return err
		}
		return replaceJobTypes(tx, app, jobTypeNames)
	}))
}

// Update writes the editable fields of app and rebuilds its job types. The
// write is conjoined with ownerID; a miss is ErrNotFound.
func (r *JobApplicationRepository) Update(ctx context.Context, ownerID uuid.UUID, app *model.JobApplication, jobTypeNames []string) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.JobApplication{}).
			Where("id = ? AND user_id = ?", app.ID, ownerID).
			Select(applicationFields).
			Updates(app)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		app.UserID = ownerID
		return replaceJobTypes(tx, app, jobTypeNames)
	}))
}

// Delete removes the application together with its documents, interview logs,
// entry sheets and tag links, and returns the removed documents so their
// stored files can be cleaned up.
func (r *JobApplicationRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) ([]model.Document, error) {
	var app model.JobApplication
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Documents").
			Where("id = ? AND user_id = ?", id, ownerID).
			First(&app).Error; err != nil {
			return err
		}
		return tx.Select(clause.Associations).Delete(&app).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return app.Documents, nil
}

// replaceJobTypes clears the application's tags and re-associates one tag per
// name, creating missing tags on first use.
func replaceJobTypes(tx *gorm.DB, app *model.JobApplication, names []string) error {
	if err := tx.Model(app).Association("JobTypes").Clear(); err != nil {
		return err
	}

	types := make([]model.JobType, 0, len(names))
	for _, name := range names {
		var jt model.JobType
		if err := tx.Where(model.JobType{Name: name}).FirstOrCreate(&jt).Error; err != nil {
			return err
		}
		types = append(types, jt)
	}
	if len(types) == 0 {
		app.JobTypes = []model.JobType{}
		return nil
	}
	// Append also fills app.JobTypes, which Clear left empty.
	return tx.Model(app).Association("JobTypes").Append(types)
}
