package consts

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	JobStatusActive = "Active"
	JobStatusClosed = "Closed"
	JobStatusDraft  = "Draft"
)

const (
	RecommendationTypeJob    = "job"
	RecommendationTypeCourse = "course"
)

const (
	DefaultJobType           = "Full-time"
	ApplicationStatusApplied = "Applied"
	DefaultResumeName        = "Resume"
)

const (
	MimeTypePDF  = "application/pdf"
	MimeTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypeText = "text/plain"
)

const (
	// SysBoxTypeApplication 投递成功通知
	SysBoxTypeApplication int8 = 1
)
