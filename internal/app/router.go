package app

import (
	"coding_lessons_backend/internal/config"
	"coding_lessons_backend/internal/middleware"
	"coding_lessons_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("", c.health.Status)
		api.GET("/health", c.health.HealthCheck)
		api.GET("/lessons", c.lesson.List)
	}

	if a.Config.Auth.Mode == config.AuthModeCredentialed {
		a.registerCredentialedRoutes(api, c, s)
	} else {
		a.registerAnonymousRoutes(api, c)
	}

	// 教师面板：独立的共享凭证，弱于学生会话
	teacher := api.Group("/teacher")
	teacher.Use(middleware.TeacherAuthMiddleware(a.Provider))
	{
		teacher.GET("/students", c.teacher.GetAllStudents)
		teacher.GET("/student/:id/details", c.teacher.GetStudentDetails)
	}
}

// Anonymous mode: the client embeds its student_db_id in requests and is
// trusted to present it honestly.
func (a *App) registerAnonymousRoutes(api *gin.RouterGroup, c *controllers) {
	api.POST("/student/login", c.student.Login)
	api.POST("/response/save", c.response.Save)
	api.GET("/student/:id/lesson/:slug/progress", c.response.GetProgress)
}

// Credentialed mode: lesson-content routes require an active session.
func (a *App) registerCredentialedRoutes(api *gin.RouterGroup, c *controllers, s *services) {
	api.POST("/register", c.auth.Register)
	api.POST("/login", c.auth.Login)
	api.POST("/logout", c.auth.Logout)

	session := api.Group("")
	session.Use(middleware.SessionMiddleware(a.Provider, s.credentialed))
	{
		session.GET("/profile", c.auth.GetProfile)
		session.POST("/response/save", c.response.Save)
		session.GET("/student/:id/lesson/:slug/progress", c.response.GetProgress)
	}
}
