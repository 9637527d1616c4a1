package handlers

import (
	"strings"
	"time"

	"lmsplatform/internal/infrastructure/security"
	"lmsplatform/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	TokenManager *security.TokenManager
	Limiter      *middleware.RateLimiter

	Auth    *AuthHandler
	Courses *CourseHandler
	Lessons *LessonHandler
	Quizzes *QuizHandler
	Health  *HealthHandler

	CORSOrigins        string
	RateLimitPerMinute int
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(deps.CORSOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.SecurityHeaders(), middleware.ValidateBody())

	listLimit := deps.Limiter.Limit("list", deps.RateLimitPerMinute, time.Minute)

	r.GET("/", deps.Health.Root)
	r.GET("/health", deps.Health.Health)

	// Credential endpoints get their own tight limits.
	r.POST("/signup", deps.Limiter.Limit("signup", 5, time.Minute), deps.Auth.Signup)
	r.POST("/login", deps.Limiter.Limit("login", 10, time.Minute), deps.Auth.Login)

	// Course content is readable without a token.
	r.GET("/courses", listLimit, deps.Courses.List)
	r.GET("/courses/:id", deps.Courses.GetOne)
	r.GET("/courses/:id/lessons", listLimit, deps.Lessons.ListByCourse)
	r.GET("/lessons/:id", deps.Lessons.GetOne)
	r.GET("/courses/:id/quizzes", listLimit, deps.Quizzes.ListByCourse)

	authed := r.Group("/")
	authed.Use(middleware.Auth(deps.TokenManager))
	{
		authed.GET("/me", deps.Auth.Me)
		authed.GET("/quizzes/:id/questions", listLimit, deps.Quizzes.ListQuestions)
		authed.POST("/courses/:id/enroll", deps.Courses.Enroll)
		authed.GET("/enrollments", deps.Courses.MyEnrollments)
		authed.POST("/lessons/:id/complete", deps.Lessons.Complete)
		authed.POST("/quizzes/:id/attempt", deps.Quizzes.Attempt)
		authed.GET("/quizzes/:id/attempts", listLimit, deps.Quizzes.ListAttempts)
		authed.GET("/courses/:id/progress", deps.Lessons.CourseProgress)
	}

	admin := r.Group("/")
	admin.Use(middleware.Auth(deps.TokenManager), middleware.AdminOnly())
	{
		admin.POST("/courses", deps.Courses.Create)
		admin.POST("/courses/:id/lessons", deps.Lessons.Create)
		admin.POST("/courses/:id/quizzes", deps.Quizzes.Create)
		admin.POST("/quizzes/:id/questions", deps.Quizzes.AddQuestion)
		admin.POST("/admin/promote", deps.Auth.Promote)
	}

	return r
}
