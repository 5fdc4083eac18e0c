package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, moderatorMiddleware gin.HandlerFunc) {
	group := g.Group("/employees")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/me", h.Me)
		group.GET("/:id", h.Get)
	}

	admin := group.Group("")
	admin.Use(moderatorMiddleware)
	{
		admin.POST("", h.Create)
	}
}
