package routes

import (
	"github.com/DavidK276/ojs-dashboard/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterPagesRoutes(app *fiber.App) {
	app.Get("/", controllers.Index)
	app.Get("/login", controllers.LoginPage)
	app.Post("/login", controllers.Login)
	app.Get("/logout", controllers.Logout)
}
