package api

import "CareerBridge/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	JobHandler     *handler.JobHandler
	CourseHandler  *handler.CourseHandler
	ResumeHandler  *handler.ResumeHandler
	SysBoxHandler  *handler.SysBoxHandler
	SystemHandler  *handler.SystemHandler
}
