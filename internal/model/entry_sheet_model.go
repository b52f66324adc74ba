package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntrySheet struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	JobApplicationID uuid.UUID       `gorm:"type:uuid;index;not null" json:"job_application_id"`
	JobApplication   *JobApplication `gorm:"foreignKey:JobApplicationID;constraint:OnDelete:CASCADE" json:"-"`
	Question         string          `gorm:"type:text;not null" json:"question"`
	Answer           string          `gorm:"type:text" json:"answer"`
	AIDraft          string          `gorm:"type:text" json:"ai_draft"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (e *EntrySheet) BeforeCreate(tx *gorm.DB) error {
	assignID(&e.ID)
	return nil
}
