package router

import "github.com/gin-gonic/gin"

func (r *Router) contentRoutes(version *gin.RouterGroup) {
	content := version.Group("/content")
	{
		content.GET("/:collection", r.contentHandler.ListDocuments)
		content.GET("/:collection/:id", r.contentHandler.GetDocument)
	}

	version.GET("/media/:filename", r.contentHandler.MediaURL)
}
