package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type Handlers struct {
	Project    *ProjectHandler
	Experience *ExperienceHandler
	Profile    *ProfileHandler
}

// NewRouter wires every route under /api and wraps the engine with CORS
// open to any origin for GET, POST, PUT and DELETE.
func NewRouter(h Handlers, log logger.Logger) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), AccessLogMiddleware(log), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		projects := api.Group("/projects")
		{
			projects.POST("", h.Project.CreateProject)
			projects.GET("", h.Project.ListProjects)
			projects.GET("/:id", h.Project.GetProject)
			projects.PUT("/:id", h.Project.UpdateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
		}

		experiences := api.Group("/experiences")
		{
			experiences.POST("", h.Experience.CreateExperience)
			experiences.GET("", h.Experience.ListExperiences)
			experiences.GET("/:id", h.Experience.GetExperience)
			experiences.PUT("/:id", h.Experience.UpdateExperience)
			experiences.DELETE("/:id", h.Experience.DeleteExperience)
		}

		profile := api.Group("/profile")
		{
			profile.POST("", h.Profile.CreateProfile)
			profile.GET("", h.Profile.GetProfile)
			profile.GET("/:id", h.Profile.GetProfileByID)
			profile.PUT("/:id", h.Profile.UpdateProfile)
			profile.DELETE("/:id", h.Profile.DeleteProfile)
		}
		// GET /api/profile is taken by the first-profile view.
		api.GET("/profiles", h.Profile.ListProfiles)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}
