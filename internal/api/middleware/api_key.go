package middleware

import (
	"Verdure/internal/api/config"
	"Verdure/internal/pkg/response"
	"Verdure/internal/service"
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware 生成类接口的静态密钥校验
func APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.Cfg.Server.ApiKey
		if expected == "" {
			response.Error(c, service.UnauthorizedError)
			c.Abort()
			return
		}

		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			response.Error(c, service.UnauthorizedError)
			c.Abort()
			return
		}

		c.Next()
	}
}
