package dto

import "time"

// ApplyJobDTO 投递岗位
type ApplyJobDTO struct {
	JobID       uint64  `json:"job_id" validate:"required"`
	CoverLetter *string `json:"cover_letter"`
}

// MyApplicationDTO 我的投递
type MyApplicationDTO struct {
	ID          uint64    `json:"id"`
	JobID       uint64    `json:"job_id"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"cover_letter"`
	AppliedAt   time.Time `json:"applied_at"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    *string   `json:"location"`
	JobType     string    `json:"job_type"`
}

// AdminApplicationDTO 管理端投递列表
type AdminApplicationDTO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	JobID     uint64    `json:"job_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	JobTitle  string    `json:"job_title"`
	Company   string    `json:"company"`
}

// ApplicationEvent 投递成功事件
type ApplicationEvent struct {
	ApplicationID uint64    `json:"application_id"`
	UserID        uint64    `json:"user_id"`
	JobID         uint64    `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	Company       string    `json:"company"`
	AppliedAt     time.Time `json:"applied_at"`
}
