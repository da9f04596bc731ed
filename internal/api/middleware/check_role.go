package middleware

import (
	"CareerBridge/internal/pkg/response"
	"slices"

	"github.com/gin-gonic/gin"
)

// CheckRoles 检查当前用户是否拥有指定角色之一，需在 AuthMiddleware 之后使用
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)

		if !slices.Contains(requiredRoles, role) {
			response.Fail(c, response.Forbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
