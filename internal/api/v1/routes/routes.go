package routes

import (
	"github.com/gin-gonic/gin"

	"s3-audio-translate/internal/api/middleware"
	"s3-audio-translate/internal/api/v1/handlers"
)

// RegisterRoutes registers the application page routes. Everything that
// touches the workflow sits behind RequireAuth.
func RegisterRoutes(router gin.IRouter, page *handlers.PageHandler) {
	router.GET("/", page.Show)
	router.POST("/view", page.SwitchView)
	router.POST("/login", page.Login)
	router.POST("/register", page.Register)

	workflow := router.Group("/")
	workflow.Use(middleware.RequireAuth())
	{
		workflow.POST("/transcribe", page.Transcribe)
		workflow.GET("/download/:artifact", page.Download)
	}
}

// RegisterHelloRoutes registers the placeholder server's single route
func RegisterHelloRoutes(router gin.IRouter) {
	router.GET("/api/hello", handlers.Hello)
}
