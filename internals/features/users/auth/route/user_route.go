package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"prediksiku_backend/internals/features/users/auth/controller"
	"prediksiku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
	auth.Post("/refresh-token", authCtrl.RefreshToken)
	auth.Post("/logout", authCtrl.Logout)
}

// AuthProtectedRoutes dipasang di group yang sudah melewati AuthMiddleware.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api.Get("/me", authCtrl.Me)
	api.Post("/change-password", authCtrl.ChangePassword)
}
