package main

import (
	"log"

	"github.com/DavidK276/ojs-dashboard/config"
	"github.com/DavidK276/ojs-dashboard/controllers"
	"github.com/DavidK276/ojs-dashboard/database"
	"github.com/DavidK276/ojs-dashboard/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	if config.APIURL == "" {
		log.Fatal("OJS_API_URL is not set")
	}

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Session store for saved searches
	store := session.New()
	controllers.SessionStore = store

	// Static files
	app.Static("/", "./views/")
	app.Static("/style", "./views/style")
	app.Static("/scripts", "./views/scripts")

	// Register routes
	routes.RegisterPagesRoutes(app)
	routes.RegisterParticipantRoutes(app)

	// Connect to the database
	if err := database.Connect(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	log.Fatal(app.Listen(config.ServerPort))
}
