package main

import (
	"log"

	api "learning-buddy-backend/cmd/api"
	authdomain "learning-buddy-backend/internal/auth/domain"
	authRepo "learning-buddy-backend/internal/auth/repository"
	authUsecase "learning-buddy-backend/internal/auth/usecase"
	coursedomain "learning-buddy-backend/internal/course/domain"
	courseRepo "learning-buddy-backend/internal/course/repository"
	courseUsecase "learning-buddy-backend/internal/course/usecase"
	enrollmentdomain "learning-buddy-backend/internal/enrollment/domain"
	enrollmentRepo "learning-buddy-backend/internal/enrollment/repository"
	enrollmentUsecase "learning-buddy-backend/internal/enrollment/usecase"
	recommendUsecase "learning-buddy-backend/internal/recommend/usecase"
	"learning-buddy-backend/pkg/cache"
	"learning-buddy-backend/pkg/config"
	"learning-buddy-backend/pkg/database"
	"learning-buddy-backend/pkg/media"
	"learning-buddy-backend/pkg/recommender"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &coursedomain.Course{}, &coursedomain.Module{}, &enrollmentdomain.Enrollment{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize media uploader (optional, image uploads skipped without it)
	var uploader media.Uploader
	if cfg.CloudinaryURL != "" {
		cloudinaryUploader, err := media.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			log.Printf("[WARN] Failed to initialize Cloudinary (image uploads disabled): %v", err)
		} else {
			uploader = cloudinaryUploader
			log.Println("Cloudinary uploader initialized")
		}
	} else {
		log.Println("[WARN] CLOUDINARY_URL not set, image uploads disabled")
	}

	// Initialize recommendation cache (optional)
	var recommendCache recommendUsecase.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisAddr)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis (recommendation caching disabled): %v", err)
		} else {
			recommendCache = redisCache
			log.Println("Redis recommendation cache initialized")
		}
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	courseRepository := courseRepo.NewCourseRepository(db)
	moduleRepository := courseRepo.NewModuleRepository(db)
	enrollmentRepository := enrollmentRepo.NewEnrollmentRepository(db)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, uploader, cfg)
	courseUc := courseUsecase.NewCourseUsecase(courseRepository, moduleRepository, uploader)
	enrollmentUc := enrollmentUsecase.NewEnrollmentUsecase(enrollmentRepository, courseRepository, moduleRepository)
	recommendUc := recommendUsecase.NewRecommendUsecase(recommender.NewClient(cfg.FastAPIURL), recommendCache, cfg.RecommendTTL)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, courseUc, enrollmentUc, recommendUc, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
