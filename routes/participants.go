package routes

import (
	"github.com/DavidK276/ojs-dashboard/controllers"
	"github.com/DavidK276/ojs-dashboard/middlewares"

	"github.com/gofiber/fiber/v2"
)

func RegisterParticipantRoutes(app *fiber.App) {
	// Dashboard routes require a valid OJS API key cookie
	group := app.Group("/participants", middlewares.APIKeyAuth)
	group.Get("/", controllers.ParticipantsPage)
	group.Get("/list", controllers.ParticipantList)
	group.Get("/restore", controllers.RestoreSearch)
	group.Post("/export", controllers.ExportParticipants)
	group.Post("/delete", controllers.DeleteParticipants)

	// API routes are not behind the session gate
	api := app.Group("/api")
	api.Get("/emails", controllers.ParticipantEmails)
}
