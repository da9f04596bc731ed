package model

import (
	"time"
)

type Job struct {
	ID                  uint64     `gorm:"primaryKey"`
	Title               string     `gorm:"type:varchar(200);not null"`
	Company             string     `gorm:"type:varchar(100);not null"`
	Location            *string    `gorm:"type:varchar(100)"`
	JobType             string     `gorm:"type:enum('Full-time','Part-time','Contract','Internship');default:'Full-time'"`
	ExperienceRequired  int        `gorm:"not null;default:0"`
	SalaryMin           *int       `gorm:"type:int"`
	SalaryMax           *int       `gorm:"type:int"`
	Description         string     `gorm:"type:text"`
	Requirements        *string    `gorm:"type:text"`
	SkillsRequired      string     `gorm:"type:text"`
	Benefits            *string    `gorm:"type:text"`
	ApplicationDeadline *time.Time `gorm:"type:date"`
	Status              string     `gorm:"type:enum('Active','Closed','Draft');default:'Active';index:idx_job_status"`
	CreatedBy           *uint64
	CreatedAt           time.Time `gorm:"index:idx_job_created_at"`
	UpdatedAt           time.Time

	Creator *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
}

func (Job) TableName() string {
	return "jobs"
}
