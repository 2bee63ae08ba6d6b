package middlewares

import (
	"log"
	"net/http"

	"github.com/DavidK276/ojs-dashboard/config"
	"github.com/DavidK276/ojs-dashboard/services"

	"github.com/gofiber/fiber/v2"
)

// APIKeyAuth gates dashboard routes behind a valid OJS API key cookie.
// The key is re-validated against the OJS API on every request. A missing or
// rejected key redirects to the login page; the cookie is only cleared when
// OJS actually rejected it, never on a transport failure.
func APIKeyAuth(c *fiber.Ctx) error {
	apiKey := c.Cookies(config.APIKeyCookie)
	if apiKey == "" {
		return c.Redirect("/login")
	}

	status, err := services.CheckAPIKey(apiKey)
	if err != nil {
		log.Println("[auth] OJS API unreachable:", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "upstream API unreachable",
		})
	}
	if status != http.StatusOK {
		log.Printf("[auth] API key rejected with status %d", status)
		clearAPIKeyCookie(c)
		return c.Redirect("/login")
	}

	return c.Next()
}

func clearAPIKeyCookie(c *fiber.Ctx) {
	c.ClearCookie(config.APIKeyCookie)
}
