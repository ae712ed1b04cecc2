package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/campusvvs/navigator/pkg/api/routes"
	"github.com/campusvvs/navigator/pkg/auth"
	"github.com/campusvvs/navigator/pkg/database"
	"github.com/campusvvs/navigator/pkg/dataaggregator"
)

type Dependencies struct {
	Aggregator    *dataaggregator.Aggregator
	Store         database.Store
	Authenticator auth.Authenticator
	Timetable     routes.TimetableProxy

	ResultLimit int
	Location    *time.Location
}

func NewServer(deps Dependencies) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())
	webApp.Use(cors.New())

	group := webApp.Group("/api")

	group.Get("version", routes.APIVersion)

	routes.StopsRouter(group.Group("/stops"), deps.Aggregator)
	routes.ConnectionsRouter(group.Group("/connections"), deps.Aggregator, routes.ConnectionsOptions{
		Limit:    deps.ResultLimit,
		Location: deps.Location,
	})

	routes.ProfileRouter(group.Group("/user/profile", EnsureValidToken(deps.Authenticator)), deps.Store)
	routes.FavouritesRouter(group.Group("/favorites/connection", EnsureValidToken(deps.Authenticator)), deps.Store)

	routes.TimetableRouter(group.Group("/timetable"), deps.Timetable)

	return webApp
}

func SetupServer(listen string, deps Dependencies) error {
	return NewServer(deps).Listen(listen)
}
