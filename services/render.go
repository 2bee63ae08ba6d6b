package services

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func Render(c *fiber.Ctx, relativePath string, data map[string]interface{}) error {
	tplPath := filepath.Join("views", "pages", relativePath)

	if _, err := os.Stat(tplPath); os.IsNotExist(err) {
		return c.Status(404).SendString("Template not found: " + tplPath)
	}

	tmpl := template.New(filepath.Base(tplPath)).Funcs(template.FuncMap{
		"now":        time.Now,
		"formatDate": formatDisplayDate,
	})

	tmpl, err := tmpl.ParseFiles(tplPath)
	if err != nil {
		return c.Status(500).SendString("Template parse error: " + err.Error())
	}

	var rendered strings.Builder
	if err := tmpl.Execute(&rendered, data); err != nil {
		return c.Status(500).SendString("Template exec error: " + err.Error())
	}

	return c.Type("html").SendString(rendered.String())
}

func formatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateFormat)
}
