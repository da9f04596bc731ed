package handler

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/pkg/response"
	"CareerBridge/internal/pkg/util"
	"CareerBridge/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobSvc            service.JobService
	applicationSvc    service.ApplicationService
	recommendationSvc service.RecommendationService
}

func NewJobHandler(jobSvc service.JobService, applicationSvc service.ApplicationService, recommendationSvc service.RecommendationService) *JobHandler {
	return &JobHandler{
		jobSvc:            jobSvc,
		applicationSvc:    applicationSvc,
		recommendationSvc: recommendationSvc,
	}
}

// GetJobRecommendations 全部在招岗位，附带当前用户的推荐分与投递状态
func (h *JobHandler) GetJobRecommendations(c *gin.Context) {
	jobs, err := h.recommendationSvc.ListJobRecommendations(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"jobs": jobs})
}

func (h *JobHandler) GetCourseRecommendations(c *gin.Context) {
	courses, err := h.recommendationSvc.ListCourseRecommendations(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"courses": courses})
}

func (h *JobHandler) ApplyJob(c *gin.Context) {
	var req dto.ApplyJobDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.applicationSvc.ApplyJob(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Created, "Application submitted successfully", gin.H{"application_id": id})
}

func (h *JobHandler) GetMyApplications(c *gin.Context) {
	applications, err := h.applicationSvc.ListMyApplications(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"applications": applications})
}

func (h *JobHandler) SearchJobs(c *gin.Context) {
	from, _ := strconv.Atoi(c.DefaultQuery("from", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	jobs, err := h.jobSvc.SearchJobs(c.Request.Context(), c.Query("q"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"jobs": jobs})
}

// ListJobs 管理端岗位列表
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobSvc.ListJobs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"jobs": jobs})
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.SaveJobDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.jobSvc.CreateJob(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Created, "Job created successfully", gin.H{"job_id": id})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SaveJobDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = h.jobSvc.UpdateJob(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Ok, "Job updated successfully", nil)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = h.jobSvc.DeleteJob(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Ok, "Job deleted successfully", nil)
}

// ListApplications 管理端全部投递
func (h *JobHandler) ListApplications(c *gin.Context) {
	applications, err := h.applicationSvc.ListApplications(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"applications": applications})
}
