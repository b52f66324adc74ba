package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the free-text material the draft generator feeds into prompts.
type Profile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Skills     string    `gorm:"type:text" json:"skills"`
	Experience string    `gorm:"type:text" json:"experience"`
	SelfPR     string    `gorm:"type:text" json:"self_pr"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
