package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lmsplatform/config"
	"lmsplatform/internal/application/usecase"
	"lmsplatform/internal/domain"
	"lmsplatform/internal/infrastructure/repository"
	"lmsplatform/internal/infrastructure/security"
	"lmsplatform/internal/middleware"
	handlers "lmsplatform/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Course{},
		&domain.Lesson{},
		&domain.Quiz{},
		&domain.Question{},
		&domain.Enrollment{},
		&domain.LessonCompletion{},
		&domain.QuizAttempt{},
	); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db, rdb)
	lessonRepo := repository.NewLessonRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	tokenManager := security.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	authUseCase := usecase.NewAuthUseCase(userRepo, hasher, tokenManager)
	courseUseCase := usecase.NewCourseUseCase(courseRepo, enrollmentRepo)
	lessonUseCase := usecase.NewLessonUseCase(lessonRepo, courseRepo, progressRepo)
	quizUseCase := usecase.NewQuizUseCase(quizRepo, courseRepo, progressRepo)
	progressUseCase := usecase.NewProgressUseCase(courseRepo, lessonRepo, quizRepo, progressRepo)

	router := handlers.NewRouter(handlers.RouterDeps{
		TokenManager:       tokenManager,
		Limiter:            middleware.NewRateLimiter(rdb),
		Auth:               handlers.NewAuthHandler(authUseCase),
		Courses:            handlers.NewCourseHandler(courseUseCase),
		Lessons:            handlers.NewLessonHandler(lessonUseCase, progressUseCase),
		Quizzes:            handlers.NewQuizHandler(quizUseCase),
		Health:             handlers.NewHealthHandler(db, rdb),
		CORSOrigins:        cfg.CORSOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Learning platform API is running on port %s...", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
