package store

import (
	"context"
)

// Driver is an interface for the wisdom knowledge-base database.
type Driver interface {
	GetDailyTip(ctx context.Context, find *FindTip) (*Tip, error)
	GetSeasonalWisdom(ctx context.Context, find *FindWisdom) (*Wisdom, error)
	ListRemedies(ctx context.Context, find *FindRemedy) ([]*Remedy, error)

	Migrate(ctx context.Context) error
	Close() error
}
