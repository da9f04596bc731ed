package model

import (
	"time"
)

type UserProfile struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_profile_user"`

	// 个人信息
	FirstName   *string `gorm:"type:varchar(50)"`
	LastName    *string `gorm:"type:varchar(50)"`
	Phone       *string `gorm:"type:varchar(20)"`
	DateOfBirth *string `gorm:"type:date"`
	Gender      *string `gorm:"type:enum('Male','Female','Other')"`
	Address     *string `gorm:"type:text"`
	City        *string `gorm:"type:varchar(50)"`
	State       *string `gorm:"type:varchar(50)"`
	Country     *string `gorm:"type:varchar(50)"`
	Pincode     *string `gorm:"type:varchar(10)"`

	// 学历信息
	HighestQualification *string  `gorm:"type:varchar(100)"`
	University           *string  `gorm:"type:varchar(100)"`
	GraduationYear       *int     `gorm:"type:int"`
	CGPA                 *float64 `gorm:"column:cgpa;type:decimal(3,2)"`
	FieldOfStudy         *string  `gorm:"type:varchar(100)"`

	// 技能
	TechnicalSkills      SkillList `gorm:"type:text"`
	SoftSkills           SkillList `gorm:"type:text"`
	ProgrammingLanguages SkillList `gorm:"type:text"`
	Frameworks           SkillList `gorm:"type:text"`
	Databases            SkillList `gorm:"type:text"`
	Tools                SkillList `gorm:"type:text"`

	// 经历
	TotalExperience int     `gorm:"not null;default:0"`
	Internships     *string `gorm:"type:text"`
	Projects        *string `gorm:"type:text"`
	Certifications  *string `gorm:"type:text"`

	// 求职偏好
	CareerInterests    *string `gorm:"type:text"`
	PreferredLocations *string `gorm:"type:text"`
	SalaryExpectation  *int    `gorm:"type:int"`
	WorkMode           *string `gorm:"type:enum('Remote','On-site','Hybrid')"`

	TechStack     *string `gorm:"type:text"`
	BatchSemester *string `gorm:"type:varchar(20)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
