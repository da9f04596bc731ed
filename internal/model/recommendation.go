package model

import (
	"time"
)

type Recommendation struct {
	ID                 uint64  `gorm:"primaryKey"`
	UserID             uint64  `gorm:"not null;index:idx_rec_user"`
	JobID              *uint64 `gorm:"index:idx_rec_job"`
	CourseID           *uint64 `gorm:"index:idx_rec_course"`
	RecommendationType string  `gorm:"type:enum('job','course');not null"`
	Score              float64 `gorm:"type:decimal(5,4)"`
	Reason             string  `gorm:"type:text"`
	CreatedAt          time.Time

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Job    *Job    `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Course *Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
