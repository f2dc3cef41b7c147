// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "nexus_backend/internal/feature/auth/transport/handler"
	projecthandler "nexus_backend/internal/feature/projects/transport/handler"
	"nexus_backend/internal/platform/http/handler"
)

// NewRouter builds the Gin engine with all routes mounted.
// frontendOrigin is the browser app's origin; credentials are allowed so the
// auth cookie set by login flows back on subsequent requests.
func NewRouter(frontendOrigin string, auth *authhandler.AuthHandler,
	projects *projecthandler.ProjectHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Liveness check
	r.GET("/health", handler.Health)
	r.HEAD("/health", handler.Health)
	r.OPTIONS("/health", handler.Health)

	v1 := r.Group("/api/v1")
	{
		// Development stub for the frontend dashboard
		v1.GET("/metrics", handler.Metrics)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", auth.Register)
			authGroup.POST("/login", auth.Login)
		}

		// Project routes carry no auth middleware: any caller may read or
		// write any project. See DESIGN.md before changing this.
		projectGroup := v1.Group("/projects")
		{
			projectGroup.GET("", projects.List)
			projectGroup.POST("", projects.Create)
			projectGroup.GET("/:id", projects.Get)
			projectGroup.PUT("/:id", projects.Update)
			projectGroup.DELETE("/:id", projects.Delete)
		}
	}

	return r
}
