package handler

import (
	"CareerBridge/internal/api/middleware"
	"CareerBridge/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint64 {
	return c.GetUint64(middleware.CtxUserID)
}

// parseID 解析路径参数，缺失时回退到同名 query 参数
func parseID(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	if raw == "" {
		raw = c.Query(name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}
