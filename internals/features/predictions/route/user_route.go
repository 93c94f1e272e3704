package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"prediksiku_backend/internals/features/predictions/controller"
	"prediksiku_backend/internals/scoring"
)

// PredictionRoutes dipasang di group yang sudah melewati AuthMiddleware.
func PredictionRoutes(api fiber.Router, db *gorm.DB, pipeline *scoring.Pipeline) {
	predCtrl := controller.NewPredictionController(db, pipeline)

	pred := api.Group("/predictions")
	pred.Post("/", predCtrl.CreatePrediction)
	pred.Get("/history", predCtrl.GetHistory)
}
