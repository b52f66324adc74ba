package repository

import (
	"errors"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both missing rows and rows owned by another user.
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// ownedApplicationIDs is the subquery every child-entity lookup is conjoined
// with: the ids of applications that belong to ownerID.
func ownedApplicationIDs(db *gorm.DB, ownerID uuid.UUID) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&model.JobApplication{}).
		Select("id").
		Where("user_id = ?", ownerID)
}
