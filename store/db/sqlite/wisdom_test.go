package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasalabs/rasa/internal/profile"
	"github.com/rasalabs/rasa/store"
)

func newTestDB(t *testing.T) store.Driver {
	t.Helper()
	driver, err := NewDB(&profile.Profile{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "wisdom_test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = driver.Close() })
	require.NoError(t, driver.Migrate(context.Background()))
	return driver
}

func TestGetDailyTip(t *testing.T) {
	driver := newTestDB(t)

	tip, err := driver.GetDailyTip(context.Background(), &store.FindTip{})
	require.NoError(t, err)
	assert.NotEmpty(t, tip.Content)
	assert.Equal(t, "en", tip.Lang)
}

func TestGetDailyTipFallsBackToEnglish(t *testing.T) {
	driver := newTestDB(t)

	lang := "hi"
	tip, err := driver.GetDailyTip(context.Background(), &store.FindTip{Lang: &lang})
	require.NoError(t, err)
	assert.Equal(t, "en", tip.Lang, "missing language falls back to the seeded English content")
}

func TestGetSeasonalWisdom(t *testing.T) {
	driver := newTestDB(t)

	season := "Winter"
	wisdom, err := driver.GetSeasonalWisdom(context.Background(), &store.FindWisdom{Season: &season})
	require.NoError(t, err)
	assert.Equal(t, "winter", wisdom.Season)
	assert.Contains(t, wisdom.Content, "grounding")
}

func TestGetSeasonalWisdomUnknownSeason(t *testing.T) {
	driver := newTestDB(t)

	season := "monsoon"
	_, err := driver.GetSeasonalWisdom(context.Background(), &store.FindWisdom{Season: &season})
	assert.Error(t, err)
}

func TestListRemediesByQuery(t *testing.T) {
	driver := newTestDB(t)

	query := "digestion"
	limit := 3
	remedies, err := driver.ListRemedies(context.Background(), &store.FindRemedy{Query: &query, Limit: &limit})
	require.NoError(t, err)
	require.NotEmpty(t, remedies)
	assert.LessOrEqual(t, len(remedies), 3)
	for _, r := range remedies {
		assert.Contains(t, r.Content, "digestion")
	}
}

func TestListRemediesByDosha(t *testing.T) {
	driver := newTestDB(t)

	dosha := "vata"
	remedies, err := driver.ListRemedies(context.Background(), &store.FindRemedy{Dosha: &dosha})
	require.NoError(t, err)
	require.NotEmpty(t, remedies)
	for _, r := range remedies {
		assert.Equal(t, "vata", r.Dosha)
	}
}

func TestListRemediesNoMatch(t *testing.T) {
	driver := newTestDB(t)

	query := "no-such-remedy"
	remedies, err := driver.ListRemedies(context.Background(), &store.FindRemedy{Query: &query})
	require.NoError(t, err)
	assert.Empty(t, remedies)
}
