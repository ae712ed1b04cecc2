package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusvvs/navigator/pkg/api/routes"
	"github.com/campusvvs/navigator/pkg/auth"
)

// EnsureValidToken is a middleware that resolves the request's token into a username.
// GET requests may pass the token as a query parameter, everything else uses the Authorization header.
func EnsureValidToken(authenticator auth.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)

		if c.Method() == fiber.MethodGet && c.Query("token") != "" {
			token = c.Query("token")
		}

		username, err := authenticator.Verify(token)
		if err != nil || username == "" {
			c.Status(fiber.StatusUnauthorized)
			return c.JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals(routes.AccountUsernameKey, username)

		return c.Next()
	}
}
