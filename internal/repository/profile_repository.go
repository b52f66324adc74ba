package repository

import (
	"context"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

// FindByUserID returns the user's profile, creating an empty one for users
// that predate automatic profile creation.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where(model.Profile{UserID: userID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, userID uuid.UUID, profile *model.Profile) error {
	res := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ? AND user_id = ?", profile.ID, userID).
		Select("Skills", "Experience", "SelfPR").
		Updates(profile)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
