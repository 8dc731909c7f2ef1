package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func ConfigCORS(allowedDomains []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = allowedDomains
	config.AddAllowHeaders("Authorization")
	config.MaxAge = 12 * time.Hour

	return cors.New(config)
}
