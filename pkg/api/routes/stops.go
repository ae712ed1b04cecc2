package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/dataaggregator"
	"github.com/campusvvs/navigator/pkg/dataaggregator/query"
)

func StopsRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listStops(c, aggregator)
	})
	router.Get("/:identifier", func(c *fiber.Ctx) error {
		return getStop(c, aggregator)
	})
}

func listStops(c *fiber.Ctx, aggregator *dataaggregator.Aggregator) error {
	stops, err := dataaggregator.Lookup[[]ctdf.Stop](c.UserContext(), aggregator, query.Stops{
		Search: c.Query("q"),
		Limit:  c.QueryInt("limit", 0),
	})
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if stops == nil {
		stops = []ctdf.Stop{}
	}

	return c.JSON(stops)
}

func getStop(c *fiber.Ctx, aggregator *dataaggregator.Aggregator) error {
	stop, err := dataaggregator.Lookup[*ctdf.Stop](c.UserContext(), aggregator, query.Stop{
		ID: c.Params("identifier"),
	})
	if err != nil {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stop)
}
