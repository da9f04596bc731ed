package model

import (
	"time"
)

type Course struct {
	ID              uint64   `gorm:"primaryKey"`
	Title           string   `gorm:"type:varchar(200);not null"`
	Description     string   `gorm:"type:text"`
	Provider        *string  `gorm:"type:varchar(100)"`
	DurationWeeks   *int     `gorm:"type:int"`
	DifficultyLevel *string  `gorm:"type:enum('Beginner','Intermediate','Advanced')"`
	SkillsCovered   string   `gorm:"type:text"`
	CourseURL       *string  `gorm:"column:course_url;type:varchar(500)"`
	Price           float64  `gorm:"type:decimal(10,2);default:0"`
	Rating          *float64 `gorm:"type:decimal(3,2)"`
	CreatedAt       time.Time
}

func (Course) TableName() string {
	return "courses"
}
