package api

import (
	"CareerBridge/internal/api/middleware"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", group.SystemHandler.Ping)
		apiGroup.GET("/test", group.SystemHandler.TestDatabase)

		// 无需登录即可访问的接口
		apiGroup.POST("/register", group.UserHandler.Register)
		apiGroup.POST("/login", group.UserHandler.Login)
		apiGroup.GET("/courses", group.CourseHandler.ListCourses)
		apiGroup.GET("/course/:id", group.CourseHandler.GetCourse)
		apiGroup.GET("/jobs/search", group.JobHandler.SearchJobs)

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.AuthMiddleware())
		{
			authGroup.POST("/logout", group.UserHandler.Logout)
			authGroup.GET("/check-auth", group.UserHandler.CheckAuth)

			authGroup.GET("/profile", group.ProfileHandler.GetProfile)
			authGroup.POST("/profile", group.ProfileHandler.SaveProfile)
			authGroup.PUT("/profile", group.ProfileHandler.SaveProfile)

			authGroup.GET("/job-recommendations", group.JobHandler.GetJobRecommendations)
			authGroup.GET("/course-recommendations", group.JobHandler.GetCourseRecommendations)
			authGroup.POST("/apply-job", group.JobHandler.ApplyJob)
			authGroup.GET("/my-applications", group.JobHandler.GetMyApplications)

			resumeGroup := authGroup.Group("/resume")
			{
				resumeGroup.GET("", group.ResumeHandler.ListResumes)
				resumeGroup.POST("", group.ResumeHandler.SaveResume)
				resumeGroup.DELETE("", group.ResumeHandler.DeleteResume)
				resumeGroup.DELETE("/:id", group.ResumeHandler.DeleteResume)
				resumeGroup.POST("/upload", group.ResumeHandler.UploadResumeFile)
				resumeGroup.GET("/files", group.ResumeHandler.ListResumeFiles)
			}

			sysbox := authGroup.Group("/sysbox")
			{
				sysbox.GET("/list", group.SysBoxHandler.GetNotificationList)
				sysbox.GET("/unread", group.SysBoxHandler.GetUnreadCount)
				sysbox.POST("/read", group.SysBoxHandler.MarkRead)
				sysbox.POST("/read/all", group.SysBoxHandler.MarkAllRead)
			}

			// 需要登录 & 拥有 admin 角色
			adminGroup := authGroup.Group("/admin")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.GET("/jobs", group.JobHandler.ListJobs)
				adminGroup.POST("/jobs", group.JobHandler.CreateJob)
				adminGroup.PUT("/jobs/:id", group.JobHandler.UpdateJob)
				adminGroup.DELETE("/jobs/:id", group.JobHandler.DeleteJob)
				adminGroup.GET("/applications", group.JobHandler.ListApplications)
				adminGroup.GET("/users", group.UserHandler.ListUsers)
				adminGroup.GET("/courses", group.CourseHandler.ListAllCourses)
				adminGroup.POST("/courses", group.CourseHandler.CreateCourse)
			}
		}
	}

	return r
}
