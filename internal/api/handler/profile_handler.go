package handler

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/pkg/response"
	"CareerBridge/internal/pkg/util"
	"CareerBridge/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileSvc.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// SaveProfile 创建或更新档案，推荐重算失败不影响返回
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.profileSvc.SaveProfile(c.Request.Context(), currentUserID(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, response.Ok, "Profile updated successfully", nil)
}
