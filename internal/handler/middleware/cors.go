package middleware

import (
	"log/slog"
	"slices"

	"vicqa-tradehub/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the browser policy from config. The cart token
// travels in custom headers both ways, so it is forced into the allow and
// expose lists no matter how the environment is configured.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := cfg.AllowHeaders
	if !slices.Contains(allowHeaders, CartTokenHeader) {
		allowHeaders = append(allowHeaders, CartTokenHeader)
	}
	exposeHeaders := cfg.ExposeHeaders
	if !slices.Contains(exposeHeaders, CartTokenHeader) {
		exposeHeaders = append(exposeHeaders, CartTokenHeader)
	}

	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    exposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
