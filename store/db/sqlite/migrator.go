package sqlite

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS tip (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	content TEXT NOT NULL,
	lang TEXT NOT NULL DEFAULT 'en',
	source TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS wisdom (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	season TEXT NOT NULL,
	content TEXT NOT NULL,
	lang TEXT NOT NULL DEFAULT 'en'
);

CREATE TABLE IF NOT EXISTS remedy (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	dosha TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL,
	lang TEXT NOT NULL DEFAULT 'en'
);
`

// seedTips is the bundled starter content, inserted only into an empty table
// so operators can replace it with their own datasets.
var seedTips = []struct {
	content string
	source  string
}{
	{"Drink warm water in the morning to balance Vata.", "dinacharya"},
	{"Favor warm, cooked meals over cold or raw food when Vata is high.", "dinacharya"},
	{"A short oil self-massage before bathing calms the nervous system.", "abhyanga"},
	{"Eat your largest meal at midday, when digestive fire is strongest.", "agni"},
}

var seedWisdom = []struct {
	season  string
	content string
}{
	{"winter", "Winter is a time for grounding foods and warm routines."},
	{"spring", "Spring favors light, pungent foods to clear accumulated Kapha."},
	{"summer", "Summer calls for cooling foods and gentle activity to pacify Pitta."},
	{"autumn", "Autumn asks for regularity, warmth and nourishing oils to steady Vata."},
}

var seedRemedies = []struct {
	name    string
	dosha   string
	content string
}{
	{"Ginger tea", "vata", "Fresh ginger tea kindles digestion and eases bloating."},
	{"Triphala", "tridoshic", "Triphala at night supports gentle, regular elimination."},
	{"Coriander water", "pitta", "Coriander-seed water cools excess Pitta and soothes acidity."},
	{"Trikatu", "kapha", "Trikatu before meals stimulates sluggish Kapha digestion."},
	{"Ashwagandha", "vata", "Ashwagandha steadies Vata and supports restful sleep."},
	{"Warm milk with turmeric", "vata", "Golden milk before bed grounds the body and calms the mind."},
}

// Migrate creates the knowledge-base schema and seeds starter content into
// empty tables.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var count int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tip`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count tips: %w", err)
	}
	if count == 0 {
		for _, tip := range seedTips {
			if _, err := d.db.ExecContext(ctx,
				`INSERT INTO tip (content, lang, source) VALUES (`+placeholders(3)+`)`,
				tip.content, "en", tip.source); err != nil {
				return fmt.Errorf("failed to seed tip: %w", err)
			}
		}
	}

	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wisdom`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count wisdom: %w", err)
	}
	if count == 0 {
		for _, w := range seedWisdom {
			if _, err := d.db.ExecContext(ctx,
				`INSERT INTO wisdom (season, content, lang) VALUES (`+placeholders(3)+`)`,
				w.season, w.content, "en"); err != nil {
				return fmt.Errorf("failed to seed wisdom: %w", err)
			}
		}
	}

	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM remedy`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count remedies: %w", err)
	}
	if count == 0 {
		for _, r := range seedRemedies {
			if _, err := d.db.ExecContext(ctx,
				`INSERT INTO remedy (name, dosha, content, lang) VALUES (`+placeholders(4)+`)`,
				r.name, r.dosha, r.content, "en"); err != nil {
				return fmt.Errorf("failed to seed remedy: %w", err)
			}
		}
	}

	return nil
}
