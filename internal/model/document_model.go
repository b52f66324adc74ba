package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobApplicationID uuid.UUID `gorm:"type:uuid;index;not null" json:"job_application_id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	FileRef          string    `gorm:"type:text;not null" json:"file_ref"`
	ContentType      string    `gorm:"type:varchar(100)" json:"content_type"`
	Size             int64     `json:"size"`
	PageCount        int       `json:"page_count"`
	ExtractedText    string    `gorm:"type:text" json:"extracted_text,omitempty"`
	UploadedAt       time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	assignID(&d.ID)
	return nil
}

func (d *Document) String() string {
	return d.Name
}
