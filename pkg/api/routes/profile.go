package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/database"
)

func ProfileRouter(router fiber.Router, store database.ProfileStore) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getProfile(c, store)
	})
	router.Post("/", func(c *fiber.Ctx) error {
		return postProfile(c, store)
	})
}

func getProfile(c *fiber.Ctx, store database.ProfileStore) error {
	username := accountUsername(c)
	if username == "" {
		return missingUser(c)
	}

	profile, err := store.GetProfile(c.UserContext(), username)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if profile == nil {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(profile)
}

func postProfile(c *fiber.Ctx, store database.ProfileStore) error {
	username := accountUsername(c)
	if username == "" {
		return missingUser(c)
	}

	var requestBody struct {
		Course   string `json:"course"`
		StopID   string `json:"stop_id"`
		StopName string `json:"stop_name"`
		Buffer   *int   `json:"buffer"`
	}
	if err := c.BodyParser(&requestBody); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Request body should be a JSON profile",
		})
	}

	err := store.UpsertProfile(c.UserContext(), &ctdf.UserProfile{
		Username:      username,
		TimetableLink: requestBody.Course,
		HomeStopID:    requestBody.StopID,
		HomeStopName:  requestBody.StopName,
		BufferTime:    requestBody.Buffer,
	})
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
	})
}
