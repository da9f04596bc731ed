package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrFieldsRequired      = errors.New("All fields are required")
	ErrUserExist           = errors.New("Username or email already exists")
	ErrUserNotFound        = errors.New("User not found")
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrProfileNotFound     = errors.New("Profile not found")
	ErrJobNotFound         = errors.New("Job not found")
	ErrJobNotAvailable     = errors.New("Job not found or not available")
	ErrJobFieldsRequired   = errors.New("Title, company and description are required")
	ErrAlreadyApplied      = errors.New("You have already applied for this job")
	ErrCourseNotFound      = errors.New("Course not found")
	ErrCourseFieldsMissing = errors.New("Title, description and provider are required")
	ErrResumeNotFound      = errors.New("Resume not found")
	ErrResumeIDRequired    = errors.New("Resume ID required")
	ErrFileNotSupported    = errors.New("Only PDF, DOCX or plain text resumes are supported")
	ErrFileTooLarge        = errors.New("File too large")
	ErrSysBoxNotFound      = errors.New("系统通知不存在")
	ErrSearchUnavailable   = errors.New("搜索服务暂不可用")
	UnauthorizedError      = errors.New("权限不足")
	ErrSystemBusy          = errors.New("系统繁忙，请稍后重试")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrFieldsRequired:      BadRequest,
	ErrUserExist:           BadRequest,
	ErrUserNotFound:        NotFound,
	ErrInvalidCredentials:  Unauthorized,
	ErrProfileNotFound:     NotFound,
	ErrJobNotFound:         NotFound,
	ErrJobNotAvailable:     NotFound,
	ErrJobFieldsRequired:   BadRequest,
	ErrAlreadyApplied:      BadRequest,
	ErrCourseNotFound:      NotFound,
	ErrCourseFieldsMissing: BadRequest,
	ErrResumeNotFound:      NotFound,
	ErrResumeIDRequired:    BadRequest,
	ErrFileNotSupported:    BadRequest,
	ErrFileTooLarge:        BadRequest,
	ErrSysBoxNotFound:      NotFound,
	ErrSearchUnavailable:   InternalServerError,
	UnauthorizedError:      Forbidden,
	ErrSystemBusy:          InternalServerError,
	UnExpectedError:        InternalServerError,
}
