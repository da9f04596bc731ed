package dto

import "time"

// CourseDTO 课程列表展示格式
type CourseDTO struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Provider    *string  `json:"provider"`
	Level       *string  `json:"level"`
	Duration    string   `json:"duration"`
	Rating      float64  `json:"rating"`
	Students    uint64   `json:"students"`
	Skills      []string `json:"skills"`
	Link        *string  `json:"link"`
	Price       string   `json:"price"`
}

// CourseDetailDTO 课程原始信息
type CourseDetailDTO struct {
	ID              uint64    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Provider        *string   `json:"provider"`
	DurationWeeks   *int      `json:"duration_weeks"`
	DifficultyLevel *string   `json:"difficulty_level"`
	SkillsCovered   string    `json:"skills_covered"`
	CourseURL       *string   `json:"course_url"`
	Price           float64   `json:"price"`
	Rating          *float64  `json:"rating"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateCourseDTO 管理端新建课程
type CreateCourseDTO struct {
	Title           string   `json:"title" validate:"max=200"`
	Description     string   `json:"description"`
	Provider        string   `json:"provider" validate:"max=100"`
	DurationWeeks   *int     `json:"duration_weeks" validate:"omitempty,min=0"`
	DifficultyLevel *string  `json:"difficulty_level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	SkillsCovered   string   `json:"skills_covered" copier:"-"`
	CourseURL       *string  `json:"course_url" validate:"omitempty,max=500"`
	Price           float64  `json:"price" validate:"min=0"`
	Rating          *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
}

// CourseRecommendationDTO 推荐课程
type CourseRecommendationDTO struct {
	CourseDetailDTO
	RecommendationScore  float64 `json:"recommendation_score"`
	RecommendationReason string  `json:"recommendation_reason"`
}
