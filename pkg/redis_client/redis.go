package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/campusvvs/navigator/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

// Enabled reports whether a Redis address has been configured at all
func Enabled() bool {
	return util.GetEnvironmentVariables()["NAVIGATOR_REDIS_ADDRESS"] != ""
}

func Connect() error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["NAVIGATOR_REDIS_ADDRESS"] != "" {
		address = env["NAVIGATOR_REDIS_ADDRESS"]
	}

	if env["NAVIGATOR_REDIS_PASSWORD"] != "" {
		password = env["NAVIGATOR_REDIS_PASSWORD"]
	}

	if env["NAVIGATOR_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["NAVIGATOR_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())

	return statusCmd.Err()
}
