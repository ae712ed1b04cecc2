package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/util"
)

var ErrMissingUsername = errors.New("username must be set")

type ProfileStore interface {
	// GetProfile returns nil without an error if the user has no profile yet
	GetProfile(ctx context.Context, username string) (*ctdf.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *ctdf.UserProfile) error
	EnsureProfile(ctx context.Context, username string) error
}

type FavouriteStore interface {
	// AddFavourite stores the favourite for the user, creating an empty profile first if needed
	AddFavourite(ctx context.Context, favourite *ctdf.FavouriteConnection) (*ctdf.FavouriteConnection, error)
	// ListFavourites returns the newest favourites first
	ListFavourites(ctx context.Context, username string) ([]*ctdf.FavouriteConnection, error)
	// DeleteFavourite only removes the favourite if it belongs to username. A missing favourite isn't an error.
	DeleteFavourite(ctx context.Context, username string, id int64) error
}

type Store interface {
	ProfileStore
	FavouriteStore

	Close(ctx context.Context) error
}

const (
	BackendPostgres = "postgres"
	BackendMongoDB  = "mongodb"
	BackendMemory   = "memory"
)

// Connect opens the store selected by NAVIGATOR_DATABASE_BACKEND, defaulting to Postgres
func Connect(ctx context.Context) (Store, error) {
	env := util.GetEnvironmentVariables()

	backend := env["NAVIGATOR_DATABASE_BACKEND"]
	if backend == "" {
		backend = BackendPostgres
	}

	return ConnectBackend(ctx, backend)
}

func ConnectBackend(ctx context.Context, backend string) (Store, error) {
	switch backend {
	case BackendPostgres:
		return ConnectPostgres()
	case BackendMongoDB:
		return ConnectMongoDB(ctx)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown database backend %q", backend)
	}
}
