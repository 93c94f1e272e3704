package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	predictionRoute "prediksiku_backend/internals/features/predictions/route"
	authRoute "prediksiku_backend/internals/features/users/auth/route"
	authMiddleware "prediksiku_backend/internals/middlewares/auth"
	"prediksiku_backend/internals/scoring"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, pipeline *scoring.Pipeline) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (PUBLIC) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	authRoute.AuthProtectedRoutes(private, db)
	predictionRoute.PredictionRoutes(private, db, pipeline)
}

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Prediksiku API aktif 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
