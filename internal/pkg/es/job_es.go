package es

import "time"

// JobES 写入 ES 的岗位文档
type JobES struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	JobType     string    `json:"job_type"`
	Description string    `json:"description"`
	Skills      string    `json:"skills"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
