package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/database"
)

func FavouritesRouter(router fiber.Router, store database.FavouriteStore) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listFavourites(c, store)
	})
	router.Post("/", func(c *fiber.Ctx) error {
		return postFavourite(c, store)
	})
	router.Delete("/:id", func(c *fiber.Ctx) error {
		return deleteFavourite(c, store)
	})
}

func listFavourites(c *fiber.Ctx, store database.FavouriteStore) error {
	username := accountUsername(c)
	if username == "" {
		return missingUser(c)
	}

	favourites, err := store.ListFavourites(c.UserContext(), username)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	favouritesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, favourites)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce favourites",
		})
	}

	return c.JSON(favouritesReduced)
}

func postFavourite(c *fiber.Ctx, store database.FavouriteStore) error {
	username := accountUsername(c)
	if username == "" {
		return missingUser(c)
	}

	var journey ctdf.Journey
	if err := c.BodyParser(&journey); err != nil || journey.Departure == "" || journey.Arrival == "" {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Request body should be a journey with dep and arr times",
		})
	}

	favourite, err := ctdf.NewFavouriteConnection(username, &journey)
	if err == nil {
		favourite, err = store.AddFavourite(c.UserContext(), favourite)
	}

	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"id":     favourite.ID,
	})
}

func deleteFavourite(c *fiber.Ctx, store database.FavouriteStore) error {
	username := accountUsername(c)
	if username == "" {
		return missingUser(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Favourite id should be an integer",
		})
	}

	if err := store.DeleteFavourite(c.UserContext(), username, int64(id)); err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "deleted",
	})
}
