package model

import (
	"time"
)

type UserResume struct {
	ID         uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"not null;index:idx_resume_user"`
	ResumeName string `gorm:"type:varchar(255);not null"`
	ResumeData string `gorm:"type:json;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserResume) TableName() string {
	return "user_resumes"
}

// UserResumeFile 用户上传的简历附件
type UserResumeFile struct {
	ID            uint64 `gorm:"primaryKey"`
	UserID        uint64 `gorm:"not null;index:idx_resume_file_user"`
	FileName      string `gorm:"type:varchar(255);not null"`
	ObjectKey     string `gorm:"type:varchar(512);not null"`
	MimeType      string `gorm:"type:varchar(100)"`
	Size          int64
	ExtractedText string `gorm:"type:longtext"`
	CreatedAt     time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserResumeFile) TableName() string {
	return "user_resume_files"
}
