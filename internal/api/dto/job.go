package dto

import "time"

// JobDTO 岗位
type JobDTO struct {
	ID                  uint64     `json:"id"`
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Location            *string    `json:"location"`
	JobType             string     `json:"job_type"`
	ExperienceRequired  int        `json:"experience_required"`
	SalaryMin           *int       `json:"salary_min"`
	SalaryMax           *int       `json:"salary_max"`
	Description         string     `json:"description"`
	Requirements        *string    `json:"requirements"`
	SkillsRequired      string     `json:"skills_required"`
	Benefits            *string    `json:"benefits"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Status              string     `json:"status"`
	CreatedBy           *uint64    `json:"created_by"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// SaveJobDTO 管理端创建/修改岗位
type SaveJobDTO struct {
	Title               *string `json:"title" validate:"omitempty,min=1,max=200"`
	Company             *string `json:"company" validate:"omitempty,min=1,max=100"`
	Location            *string `json:"location" validate:"omitempty,max=100"`
	JobType             *string `json:"job_type" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	ExperienceRequired  *int    `json:"experience_required" validate:"omitempty,min=0"`
	SalaryMin           *int    `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax           *int    `json:"salary_max" validate:"omitempty,min=0"`
	Description         *string `json:"description"`
	Requirements        *string `json:"requirements"`
	SkillsRequired      *string `json:"skills_required" copier:"-"`
	Benefits            *string `json:"benefits"`
	ApplicationDeadline *string `json:"application_deadline" validate:"omitempty,datetime=2006-01-02" copier:"-"`
	Status              *string `json:"status" validate:"omitempty,oneof=Active Closed Draft"`
}

// JobRecommendationDTO 推荐岗位列表项
type JobRecommendationDTO struct {
	JobDTO
	RecommendationScore  *float64   `json:"recommendation_score"`
	RecommendationReason *string    `json:"recommendation_reason"`
	ApplicationStatus    *string    `json:"application_status"`
	AppliedAt            *time.Time `json:"applied_at"`
	Applied              bool       `json:"applied"`
}

// JobSearchDTO 岗位检索结果
type JobSearchDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	JobType   string    `json:"job_type"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}
