package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (t *JobType) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	return nil
}
