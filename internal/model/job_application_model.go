package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusConsidering ApplicationStatus = "検討中"
	StatusApplied     ApplicationStatus = "応募済"
	StatusInSelection ApplicationStatus = "選考中"
	StatusOffered     ApplicationStatus = "内定"
	StatusDeclined    ApplicationStatus = "見送り"
)

const DefaultAppStatus = StatusConsidering

// ApplicationStatuses lists every status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusConsidering,
	StatusApplied,
	StatusInSelection,
	StatusOffered,
	StatusDeclined,
}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type JobApplication struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID         `gorm:"type:uuid;index;not null" json:"-"`
	User                *User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CompanyName         string            `gorm:"type:varchar(255);not null" json:"company_name"`
	JobTitle            string            `gorm:"type:varchar(255);not null" json:"job_title"`
	Status              ApplicationStatus `gorm:"type:varchar(20);not null;default:'検討中'" json:"status"`
	NextAction          string            `gorm:"type:varchar(255)" json:"next_action"`
	NextActionDate      *time.Time        `gorm:"type:date;index" json:"next_action_date"`
	CorporatePhilosophy string            `gorm:"type:text" json:"corporate_philosophy"`
	IdealCandidate      string            `gorm:"type:text" json:"ideal_candidate"`
	JobDescription      string            `gorm:"type:text" json:"job_description"`
	Notes               string            `gorm:"type:text" json:"notes"`
	AppliedAt           time.Time         `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt           time.Time         `json:"updated_at"`

	JobTypes      []JobType      `gorm:"many2many:job_application_job_types;constraint:OnDelete:CASCADE" json:"job_types,omitempty"`
	Documents     []Document     `gorm:"foreignKey:JobApplicationID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	InterviewLogs []InterviewLog `gorm:"foreignKey:JobApplicationID;constraint:OnDelete:CASCADE" json:"interview_logs,omitempty"`
	EntrySheets   []EntrySheet   `gorm:"foreignKey:JobApplicationID;constraint:OnDelete:CASCADE" json:"entry_sheets,omitempty"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	if a.Status == "" {
		a.Status = DefaultAppStatus
	}
	return nil
}

func (a *JobApplication) String() string {
	return fmt.Sprintf("%s - %s", a.CompanyName, a.JobTitle)
}
