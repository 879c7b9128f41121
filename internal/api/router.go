package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harshit2786/pdf-chat-be/internal/auth"
	"github.com/harshit2786/pdf-chat-be/internal/chat"
	"github.com/harshit2786/pdf-chat-be/internal/config"
	"github.com/harshit2786/pdf-chat-be/pkg/ratelimiter"
)

// SetupRouter configures and returns the gin engine serving the REST API and
// the streaming query endpoint.
func SetupRouter(h *Handler, chatHandler *chat.Handler, tokens *auth.TokenService, rlCfg *config.RateLimiterConfig) *gin.Engine {
	r := gin.Default()

	if rlCfg != nil && rlCfg.Enabled {
		r.Use(RateLimit(ratelimiter.NewTokenBucket(rlCfg.Rate, rlCfg.Capacity)))
	}

	authMiddleware := auth.Middleware(tokens)

	apiV1 := r.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signin", h.Signin)
			authGroup.POST("/signup", h.Signup)
			authGroup.GET("/currentuser", authMiddleware, h.CurrentUser)
			authGroup.PUT("/avatar", authMiddleware, h.UpdateAvatar)
		}

		folderGroup := apiV1.Group("/folder")
		folderGroup.Use(authMiddleware)
		{
			folderGroup.GET("", h.ListFolders)
			folderGroup.POST("", h.CreateFolder)
			folderGroup.PUT("/:id", h.UpdateFolder)
			folderGroup.DELETE("/:id", h.DeleteFolder)
			folderGroup.GET("/:id", h.GetFolder)
		}

		pdfGroup := apiV1.Group("/pdf")
		pdfGroup.Use(authMiddleware)
		{
			pdfGroup.POST("/upload/:folderId", h.UploadPDF)
			pdfGroup.DELETE("/:id", h.DeletePDF)
			pdfGroup.GET("/:id", h.DownloadPDF)
		}
	}

	// The root path serves both the health probe and the streaming query
	// endpoint; websocket clients announce themselves with the Upgrade header.
	r.GET("/", func(c *gin.Context) {
		if c.GetHeader("Upgrade") == "websocket" {
			chatHandler.Serve(c)
			return
		}
		c.String(http.StatusOK, "Hi there")
	})

	return r
}
