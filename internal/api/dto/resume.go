package dto

import "time"

// ResumeDTO 在线简历
type ResumeDTO struct {
	ID         uint64         `json:"id"`
	UserID     uint64         `json:"user_id"`
	ResumeName string         `json:"resume_name"`
	ResumeData map[string]any `json:"resume_data"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ResumeFileDTO 简历附件
type ResumeFileDTO struct {
	ID        uint64    `json:"id"`
	FileName  string    `json:"file_name"`
	MimeType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	URL       string    `json:"url"`
	TextChars int       `json:"text_chars,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
