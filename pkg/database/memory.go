package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campusvvs/navigator/pkg/ctdf"
)

// MemoryStore keeps everything in process, for tests and running locally without a database
type MemoryStore struct {
	mutex sync.RWMutex

	profiles   map[string]ctdf.UserProfile
	favourites map[int64]ctdf.FavouriteConnection
	lastID     int64

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:   map[string]ctdf.UserProfile{},
		favourites: map[int64]ctdf.FavouriteConnection{},
		now:        time.Now,
	}
}

func (s *MemoryStore) GetProfile(_ context.Context, username string) (*ctdf.UserProfile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	profile, exists := s.profiles[username]
	if !exists {
		return nil, nil
	}

	return &profile, nil
}

func (s *MemoryStore) UpsertProfile(_ context.Context, profile *ctdf.UserProfile) error {
	if profile.Username == "" {
		return ErrMissingUsername
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.profiles[profile.Username] = *profile

	return nil
}

func (s *MemoryStore) EnsureProfile(_ context.Context, username string) error {
	if username == "" {
		return ErrMissingUsername
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ensureProfile(username)

	return nil
}

func (s *MemoryStore) ensureProfile(username string) {
	if _, exists := s.profiles[username]; !exists {
		s.profiles[username] = ctdf.UserProfile{Username: username}
	}
}

func (s *MemoryStore) AddFavourite(_ context.Context, favourite *ctdf.FavouriteConnection) (*ctdf.FavouriteConnection, error) {
	if favourite.Username == "" {
		return nil, ErrMissingUsername
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ensureProfile(favourite.Username)

	s.lastID++
	favourite.ID = s.lastID
	favourite.CreatedAt = s.now()

	s.favourites[favourite.ID] = *favourite

	return favourite, nil
}

func (s *MemoryStore) ListFavourites(_ context.Context, username string) ([]*ctdf.FavouriteConnection, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	favourites := []*ctdf.FavouriteConnection{}
	for _, favourite := range s.favourites {
		favourite := favourite // per-iteration copy (go directive < 1.22)
		if favourite.Username == username {
			favourites = append(favourites, &favourite)
		}
	}

	sort.Slice(favourites, func(i, j int) bool {
		if favourites[i].CreatedAt.Equal(favourites[j].CreatedAt) {
			return favourites[i].ID > favourites[j].ID
		}

		return favourites[i].CreatedAt.After(favourites[j].CreatedAt)
	})

	return favourites, nil
}

func (s *MemoryStore) DeleteFavourite(_ context.Context, username string, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if favourite, exists := s.favourites[id]; exists && favourite.Username == username {
		delete(s.favourites, id)
	}

	return nil
}

func (s *MemoryStore) Close(_ context.Context) error {
	return nil
}
