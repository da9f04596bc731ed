package handler

import (
	"CareerBridge/internal/pkg/response"
	"CareerBridge/internal/service"
	"io"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeSvc service.ResumeService
}

func NewResumeHandler(resumeSvc service.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		resumeSvc: resumeSvc,
	}
}

func (h *ResumeHandler) ListResumes(c *gin.Context) {
	resumes, err := h.resumeSvc.ListResumes(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"resumes": resumes})
}

// SaveResume 请求体整体作为简历内容保存
func (h *ResumeHandler) SaveResume(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.resumeSvc.SaveResume(c.Request.Context(), currentUserID(c), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Created, "Resume saved successfully", gin.H{"resume_id": id})
}

func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, service.ErrResumeIDRequired)
		return
	}
	if err = h.resumeSvc.DeleteResume(c.Request.Context(), currentUserID(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Ok, "Resume deleted successfully", nil)
}

// UploadResumeFile 上传简历附件，类型以文件内容为准
func (h *ResumeHandler) UploadResumeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if fileHeader.Size > service.MaxResumeFileSize {
		response.Error(c, service.ErrFileTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.ErrorContext(c.Request.Context(), "open upload file error", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxResumeFileSize+1))
	if err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}

	res, err := h.resumeSvc.UploadResumeFile(c.Request.Context(), currentUserID(c), fileHeader.Filename, data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Created, "Resume uploaded successfully", res)
}

func (h *ResumeHandler) ListResumeFiles(c *gin.Context) {
	files, err := h.resumeSvc.ListResumeFiles(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"files": files})
}
