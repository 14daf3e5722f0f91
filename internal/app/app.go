package app

import (
	"log"
	"os"

	"github.com/aman52kwah/kaynetartsphere/internal/cloudinary"
	"github.com/aman52kwah/kaynetartsphere/internal/paystack"
	"github.com/aman52kwah/kaynetartsphere/internal/shared/database/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Logger
	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	// 2. Setup Infrastructure
	database, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	if err := db.RunMigrations(os.Getenv("DB_URL")); err != nil {
		return err
	}

	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// 3. Setup Third Party Services
	cloudinaryService, err := cloudinary.NewService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
		os.Getenv("CLOUDINARY_FOLDER"),
	)
	if err != nil {
		log.Printf("⚠️ Cloudinary not configured, image uploads disabled: %v", err)
		cloudinaryService = cloudinary.NewNoopService()
	}

	paystackService, err := paystack.NewServiceFromEnv()
	if err != nil {
		return err
	}

	// 4. Register Modules & Routes
	registerModules(router, database, redisClient, cloudinaryService, paystackService, logger)

	return nil
}
