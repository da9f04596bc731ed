package model

import "time"

// JobRecommendationRow 岗位 LEFT JOIN 当前用户的推荐与投递记录
type JobRecommendationRow struct {
	Job
	RecommendationScore  *float64
	RecommendationReason *string
	ApplicationStatus    *string
	AppliedAt            *time.Time
}

// CourseRecommendationRow 推荐课程
type CourseRecommendationRow struct {
	Course
	RecommendationScore  float64
	RecommendationReason string
}

// UserApplicationRow 用户视角的投递记录
type UserApplicationRow struct {
	ID          uint64
	JobID       uint64
	Status      string
	CoverLetter *string
	AppliedAt   time.Time
	Title       string
	Company     string
	Location    *string
	JobType     string
}

// AdminApplicationRow 管理端投递记录
type AdminApplicationRow struct {
	ID        uint64
	UserID    uint64
	JobID     uint64
	Status    string
	AppliedAt time.Time
	Username  string
	Email     string
	JobTitle  string
	Company   string
}
