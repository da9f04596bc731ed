package model

import (
	"time"
)

type JobApplication struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;uniqueIndex:uk_application,priority:1"`
	JobID       uint64    `gorm:"not null;uniqueIndex:uk_application,priority:2"`
	ResumePath  *string   `gorm:"type:varchar(255)"`
	CoverLetter *string   `gorm:"type:text"`
	Status      string    `gorm:"type:enum('Applied','Under Review','Shortlisted','Rejected','Accepted');default:'Applied'"`
	AppliedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Job  *Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
