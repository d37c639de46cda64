package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"learnsphere/config"
	"learnsphere/delivery"
	"learnsphere/middleware"
	"learnsphere/repository"
	"learnsphere/service"
	"learnsphere/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	// Register custom validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	// Boot DB
	db, err := config.BootDB()
	if err != nil {
		log.Fatal("❌ Failed to connect to database: ", err)
	}

	// Redis backs the auth rate limiter; without it the limiter is a no-op
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient, err := config.InitRedisDB(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Fatal("❌ Failed to connect to Redis: ", err)
		}
		middleware.InitRateLimiter(redisClient)
	} else {
		log.Println("⚠️  REDIS_ADDR not set, auth rate limiting disabled")
	}

	// JWT secret validation
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET not found in .env")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("❌ JWT_SECRET must be at least 32 characters for security. Generate one with: openssl rand -base64 32")
	}

	// Init repositories
	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	// Init services
	authService := service.NewAuthService(studentRepo, jwtSecret)
	enrollmentService := service.NewEnrollmentService(studentRepo, courseRepo)
	profileService := service.NewProfileService(studentRepo)
	feedbackService := service.NewFeedbackService(studentRepo, courseRepo)

	// Init Gin
	app := gin.Default()
	config.InitMiddleware(app)

	delivery.NewAuthHandler(app, authService)
	delivery.NewStudentHandler(app, profileService, enrollmentService, feedbackService, authService.GetAccessTokenManager())

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	srvAddr := ":" + port

	srv := &http.Server{
		Addr:           srvAddr,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Printf("🚀 Server running at http://localhost%s", srvAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
