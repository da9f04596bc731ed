package handler

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/pkg/response"
	"CareerBridge/internal/pkg/util"
	"CareerBridge/internal/service"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseSvc service.CourseService
}

func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{
		courseSvc: courseSvc,
	}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseSvc.ListCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, courses)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courseSvc.GetCourse(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, course)
}

func (h *CourseHandler) ListAllCourses(c *gin.Context) {
	courses, err := h.courseSvc.ListAllCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"courses": courses})
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.courseSvc.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Created, "Course created successfully", gin.H{"course_id": id})
}
