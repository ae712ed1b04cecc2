package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const DefaultTimetableBaseURL = "https://api.dhbw.app/rapla/lectures"

// TimetableProxy forwards lecture lookups to the course timetable API
type TimetableProxy struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

func TimetableRouter(router fiber.Router, proxy TimetableProxy) {
	if proxy.BaseURL == "" {
		proxy.BaseURL = DefaultTimetableBaseURL
	}
	if proxy.Timeout <= 0 {
		proxy.Timeout = 10 * time.Second
	}
	if proxy.Client == nil {
		proxy.Client = &http.Client{}
	}

	router.Get("/", func(c *fiber.Ctx) error {
		return getTimetable(c, proxy)
	})
}

func getTimetable(c *fiber.Ctx, proxy TimetableProxy) error {
	course := c.Query("course")
	if course == "" {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "No course provided",
		})
	}

	body, err := proxy.events(c.UserContext(), course)
	if err != nil {
		log.Error().Err(err).Str("course", course).Msg("Failed to get timetable")

		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (p TimetableProxy) events(ctx context.Context, course string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	requestURL := fmt.Sprintf("%s/%s/events", p.BaseURL, url.PathEscape(course))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("timetable API returned status %d without a JSON body", resp.StatusCode)
	}

	return body, nil
}
