package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/DavidK276/ojs-dashboard/config"
	"github.com/DavidK276/ojs-dashboard/services"

	"github.com/gofiber/fiber/v2"
)

// Index redirects to the login page.
func Index(c *fiber.Ctx) error {
	return c.Redirect("/login")
}

// LoginPage returns the login page (pages/index.html)
func LoginPage(c *fiber.Ctx) error {
	return c.SendFile("./views/pages/index.html")
}

// Login validates the submitted API key against the OJS API and, on success,
// stores it in an httpOnly cookie.
func Login(c *fiber.Ctx) error {
	apiKey := c.FormValue("apiKey")
	if apiKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "apiKey is required"})
	}

	status, err := services.CheckAPIKey(apiKey)
	if err != nil {
		log.Println("login: OJS API unreachable:", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "error": "upstream API unreachable"})
	}
	if status != http.StatusOK {
		log.Printf("login failed with status %d", status)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false})
	}

	c.Cookie(&fiber.Cookie{
		Name:     config.APIKeyCookie,
		Value:    apiKey,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(0, 0, config.APIKeyCookieDays),
	})
	return c.JSON(fiber.Map{"success": true})
}

// Logout clears the API key cookie and returns to the login page.
func Logout(c *fiber.Ctx) error {
	c.ClearCookie(config.APIKeyCookie)
	return c.Redirect("/login")
}
