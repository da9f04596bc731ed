package dto

import "time"

// UpdateProfileDTO 创建/更新档案，仅更新传入的字段
type UpdateProfileDTO struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=50"`
	LastName    *string `json:"last_name" validate:"omitempty,max=50"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Address     *string `json:"address"`
	City        *string `json:"city" validate:"omitempty,max=50"`
	State       *string `json:"state" validate:"omitempty,max=50"`
	Country     *string `json:"country" validate:"omitempty,max=50"`
	Pincode     *string `json:"pincode" validate:"omitempty,max=10"`

	HighestQualification *string  `json:"highest_qualification" validate:"omitempty,max=100"`
	University           *string  `json:"university" validate:"omitempty,max=100"`
	GraduationYear       *int     `json:"graduation_year" validate:"omitempty,min=1900,max=2100"`
	CGPA                 *float64 `json:"cgpa" validate:"omitempty,min=0,max=9.99"`
	FieldOfStudy         *string  `json:"field_of_study" validate:"omitempty,max=100"`

	TechnicalSkills      *[]string `json:"technical_skills" copier:"-"`
	SoftSkills           *[]string `json:"soft_skills" copier:"-"`
	ProgrammingLanguages *[]string `json:"programming_languages" copier:"-"`
	Frameworks           *[]string `json:"frameworks" copier:"-"`
	Databases            *[]string `json:"databases" copier:"-"`
	Tools                *[]string `json:"tools" copier:"-"`

	TotalExperience *int    `json:"total_experience" validate:"omitempty,min=0"`
	Internships     *string `json:"internships"`
	Projects        *string `json:"projects"`
	Certifications  *string `json:"certifications"`

	CareerInterests    *string `json:"career_interests"`
	PreferredLocations *string `json:"preferred_locations"`
	SalaryExpectation  *int    `json:"salary_expectation" validate:"omitempty,min=0"`
	WorkMode           *string `json:"work_mode" validate:"omitempty,oneof=Remote On-site Hybrid"`

	TechStack     *string `json:"tech_stack"`
	BatchSemester *string `json:"batch_semester" validate:"omitempty,max=20"`
}

// ProfileDTO 档案返回对象，技能字段均为列表
type ProfileDTO struct {
	ID     uint64 `json:"id"`
	UserID uint64 `json:"user_id"`

	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth" copier:"-"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	Pincode     *string `json:"pincode"`

	HighestQualification *string  `json:"highest_qualification"`
	University           *string  `json:"university"`
	GraduationYear       *int     `json:"graduation_year"`
	CGPA                 *float64 `json:"cgpa"`
	FieldOfStudy         *string  `json:"field_of_study"`

	TechnicalSkills      []string `json:"technical_skills" copier:"-"`
	SoftSkills           []string `json:"soft_skills" copier:"-"`
	ProgrammingLanguages []string `json:"programming_languages" copier:"-"`
	Frameworks           []string `json:"frameworks" copier:"-"`
	Databases            []string `json:"databases" copier:"-"`
	Tools                []string `json:"tools" copier:"-"`

	TotalExperience int     `json:"total_experience"`
	Internships     *string `json:"internships"`
	Projects        *string `json:"projects"`
	Certifications  *string `json:"certifications"`

	CareerInterests    *string `json:"career_interests"`
	PreferredLocations *string `json:"preferred_locations"`
	SalaryExpectation  *int    `json:"salary_expectation"`
	WorkMode           *string `json:"work_mode"`

	TechStack     *string `json:"tech_stack"`
	BatchSemester *string `json:"batch_semester"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
