package handler

import (
	"CareerBridge/internal/pkg/response"
	"CareerBridge/internal/service"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	systemSvc service.SystemService
}

func NewSystemHandler(systemSvc service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemSvc: systemSvc,
	}
}

// TestDatabase 数据库连通性与表清单
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	res, err := h.systemSvc.CheckDatabase(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Ok, res.Message, res)
}

func (h *SystemHandler) Ping(c *gin.Context) {
	response.SuccessWithMessage(c, response.Ok, "pong", nil)
}
