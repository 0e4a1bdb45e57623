package middleware

import (
	"net/http"
	"strings"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/apierror"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AdminAuth guards mutating catalog and configuration routes. The token is
// issued by POST /api/pin/verify and lives in Redis until its TTL expires.
func AdminAuth(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" {
			header := c.GetHeader("Authorization")
			token = strings.TrimPrefix(header, "Bearer ")
		}
		if !service.IsAdminSession(c.Request.Context(), rdb, token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sessão administrativa inválida ou expirada"))
			return
		}
		c.Next()
	}
}
