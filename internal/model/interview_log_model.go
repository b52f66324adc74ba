package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewLog struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobApplicationID uuid.UUID `gorm:"type:uuid;index;not null" json:"job_application_id"`
	Stage            string    `gorm:"type:varchar(100);not null" json:"stage"`
	InterviewDate    time.Time `gorm:"type:date;not null" json:"interview_date"`
	QuestionsAsked   string    `gorm:"type:text" json:"questions_asked"`
	MyAnswers        string    `gorm:"type:text" json:"my_answers"`
	Reflection       string    `gorm:"type:text" json:"reflection"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (l *InterviewLog) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	return nil
}
