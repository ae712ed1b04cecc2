package routes

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/dataaggregator"
	"github.com/campusvvs/navigator/pkg/dataaggregator/query"
)

type ConnectionsOptions struct {
	Limit int

	// Location is the timezone used to pick today's date when a request doesn't give one
	Location *time.Location
}

func ConnectionsRouter(router fiber.Router, aggregator *dataaggregator.Aggregator, options ConnectionsOptions) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getConnections(c, aggregator, options)
	})
}

func getConnections(c *fiber.Ctx, aggregator *dataaggregator.Aggregator, options ConnectionsOptions) error {
	// A missing or unparseable buffer means no extra buffer, a negative one is rejected by validation
	buffer, err := strconv.Atoi(c.Query("buffer", "0"))
	if err != nil {
		buffer = 0
	}

	date := c.Query("date")
	if date == "" {
		date = ctdf.TodayCompactDate(options.Location)
	}

	searchRequest := ctdf.SearchRequest{
		Direction:     ctdf.ParseDirection(c.Query("mode")),
		UserStopID:    c.Query("userStopId"),
		Date:          date,
		Time:          c.Query("time"),
		BufferMinutes: buffer,
	}

	journeys, err := dataaggregator.Lookup[[]*ctdf.Journey](c.UserContext(), aggregator, query.JourneySearch{
		Request: searchRequest,
		Limit:   options.Limit,
	})

	switch {
	case errors.Is(err, ctdf.ErrInvalidTime):
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter time should be a HHMM time",
		})
	case errors.Is(err, ctdf.ErrInvalidDate):
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter date should be a YYYYMMDD date",
		})
	case errors.Is(err, ctdf.ErrInvalidBuffer):
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter buffer should not be negative",
		})
	case errors.Is(err, ctdf.ErrMissingStop):
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter userStopId is required",
		})
	case err != nil:
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if journeys == nil {
		journeys = []*ctdf.Journey{}
	}

	return c.JSON(fiber.Map{
		"journeys": journeys,
	})
}
