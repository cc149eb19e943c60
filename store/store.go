package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rasalabs/rasa/internal/profile"
	"github.com/rasalabs/rasa/store/cache"
)

// Store provides access to conversations and the wisdom knowledge base.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// chat holds per-user conversations for the process lifetime.
	chat *conversationStore

	// Caches for knowledge-base reads
	tipCache    *cache.Cache
	wisdomCache *cache.Cache
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	cacheConfig := cache.Config{
		DefaultTTL:      10 * time.Minute,
		CleanupInterval: 5 * time.Minute,
		MaxItems:        1000,
	}

	return &Store{
		driver:      driver,
		profile:     profile,
		chat:        newConversationStore(),
		tipCache:    cache.New(cacheConfig),
		wisdomCache: cache.New(cacheConfig),
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	s.tipCache.Close()
	s.wisdomCache.Close()
	return s.driver.Close()
}

// GetDailyTip returns the tip of the day for the given language.
func (s *Store) GetDailyTip(ctx context.Context, lang string) (*Tip, error) {
	key := "tip:" + lang
	if cached, ok := s.tipCache.Get(key); ok {
		return cached.(*Tip), nil
	}

	tip, err := s.driver.GetDailyTip(ctx, &FindTip{Lang: &lang})
	if err != nil {
		return nil, err
	}
	s.tipCache.Set(key, tip)
	return tip, nil
}

// GetSeasonalWisdom returns guidance for the given season and language.
func (s *Store) GetSeasonalWisdom(ctx context.Context, season, lang string) (*Wisdom, error) {
	key := fmt.Sprintf("wisdom:%s:%s", season, lang)
	if cached, ok := s.wisdomCache.Get(key); ok {
		return cached.(*Wisdom), nil
	}

	wisdom, err := s.driver.GetSeasonalWisdom(ctx, &FindWisdom{Season: &season, Lang: &lang})
	if err != nil {
		return nil, err
	}
	s.wisdomCache.Set(key, wisdom)
	return wisdom, nil
}

// ListRemedies queries the knowledge base for matching remedies.
func (s *Store) ListRemedies(ctx context.Context, find *FindRemedy) ([]*Remedy, error) {
	return s.driver.ListRemedies(ctx, find)
}

// Migrate prepares the knowledge-base schema and seed content.
func (s *Store) Migrate(ctx context.Context) error {
	return s.driver.Migrate(ctx)
}
