package api

import (
	"Verdure/internal/api/middleware"
	"Verdure/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/featured", group.PostHandler.ListFeatured)
			postGroup.GET("/search", group.PostHandler.SearchPosts)
			postGroup.GET("/:slug", group.PostHandler.GetPost)
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.PostHandler.ListCategories)
			categoryGroup.GET("/:slug/posts", group.PostHandler.ListByCategory)
		}

		apiGroup.GET("/tags/:slug/posts", group.PostHandler.ListByTag)

		apiGroup.POST("/contact", group.ContactHandler.SubmitMessage)

		// 生成类接口需要静态密钥
		generateGroup := apiGroup.Group("/generate")
		generateGroup.Use(middleware.APIKeyMiddleware())
		{
			generateGroup.POST("", group.GenerateHandler.Generate)
			generateGroup.POST("/daily", group.GenerateHandler.GenerateDaily)
		}
	}

	return r
}
