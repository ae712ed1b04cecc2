package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusvvs/navigator/pkg/ctdf"
)

func TestMemoryStoreProfiles(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	profile, err := store.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, profile)

	buffer := 5
	require.NoError(t, store.UpsertProfile(ctx, &ctdf.UserProfile{
		Username:     "alice",
		HomeStopID:   "de:08111:6118",
		HomeStopName: "Stadtmitte",
		BufferTime:   &buffer,
	}))

	profile, err = store.GetProfile(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Stadtmitte", profile.HomeStopName)
	assert.Equal(t, 5, *profile.BufferTime)

	require.NoError(t, store.UpsertProfile(ctx, &ctdf.UserProfile{Username: "alice", TimetableLink: "TINF23A"}))

	profile, err = store.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "TINF23A", profile.TimetableLink)
	assert.Empty(t, profile.HomeStopID)

	assert.ErrorIs(t, store.UpsertProfile(ctx, &ctdf.UserProfile{}), ErrMissingUsername)
	assert.ErrorIs(t, store.EnsureProfile(ctx, ""), ErrMissingUsername)
}

func TestMemoryStoreFavourites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	clock := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	first, err := store.AddFavourite(ctx, &ctdf.FavouriteConnection{Username: "alice", Departure: "08:00", Arrival: "08:30"})
	require.NoError(t, err)
	second, err := store.AddFavourite(ctx, &ctdf.FavouriteConnection{Username: "alice", Departure: "09:00", Arrival: "09:30"})
	require.NoError(t, err)
	_, err = store.AddFavourite(ctx, &ctdf.FavouriteConnection{Username: "bob", Departure: "10:00", Arrival: "10:30"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	profile, err := store.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, profile)

	favourites, err := store.ListFavourites(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, favourites, 2)
	assert.Equal(t, second.ID, favourites[0].ID)
	assert.Equal(t, first.ID, favourites[1].ID)

	// Someone else's favourite is left alone
	require.NoError(t, store.DeleteFavourite(ctx, "bob", first.ID))
	favourites, _ = store.ListFavourites(ctx, "alice")
	assert.Len(t, favourites, 2)

	require.NoError(t, store.DeleteFavourite(ctx, "alice", first.ID))
	require.NoError(t, store.DeleteFavourite(ctx, "alice", 999))

	favourites, _ = store.ListFavourites(ctx, "alice")
	require.Len(t, favourites, 1)
	assert.Equal(t, "09:00", favourites[0].Departure)

	favourites, err = store.ListFavourites(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, favourites)
	assert.Empty(t, favourites)

	_, err = store.AddFavourite(ctx, &ctdf.FavouriteConnection{})
	assert.ErrorIs(t, err, ErrMissingUsername)
}

func TestConnectBackend(t *testing.T) {
	store, err := ConnectBackend(context.Background(), BackendMemory)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	_, err = ConnectBackend(context.Background(), "sqlite")
	assert.Error(t, err)
}
