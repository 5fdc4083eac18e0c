package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, moderatorMiddleware, listCache gin.HandlerFunc) {
	group := g.Group("/rooms")
	group.Use(authMiddleware)
	{
		group.GET("", listCache, h.List)
		group.GET("/:id", h.Get)
		group.GET("/:id/photos/:photoId", h.GetPhoto)
	}

	// Moderator-only writes
	admin := group.Group("")
	admin.Use(moderatorMiddleware)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.POST("/:id/photos", h.UploadPhoto)
		admin.DELETE("/:id/photos/:photoId", h.DeletePhoto)
	}
}
