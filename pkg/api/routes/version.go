package routes

import "github.com/gofiber/fiber/v2"

// Version is replaced at build time with -ldflags "-X github.com/campusvvs/navigator/pkg/api/routes.Version=..."
var Version = "v1.0"

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "navigator",
		"version": Version,
	})
}
