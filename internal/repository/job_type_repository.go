package repository

import (
	"context"
	"strings"

	"github.com/fadilmartias/job-tracker/internal/model"
	"gorm.io/gorm"
)

type JobTypeRepository struct {
	db *gorm.DB
}

func NewJobTypeRepository(db *gorm.DB) *JobTypeRepository {
	return &JobTypeRepository{db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchNames returns tag names containing term, case-insensitively.
func (r *JobTypeRepository) SearchNames(ctx context.Context, term string, limit int) ([]string, error) {
	names := []string{}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	err := r.db.WithContext(ctx).
		Model(&model.JobType{}).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("name").
		Limit(limit).
		Pluck("name", &names).Error
	return names, err
}
