package routes

import "github.com/gofiber/fiber/v2"

// AccountUsernameKey is the fiber local the authentication middleware stores the username under
const AccountUsernameKey = "account_username"

func accountUsername(c *fiber.Ctx) string {
	username, _ := c.Locals(AccountUsernameKey).(string)

	return username
}

func missingUser(c *fiber.Ctx) error {
	c.Status(fiber.StatusUnauthorized)
	return c.JSON(fiber.Map{
		"error": "Unauthorized",
	})
}
