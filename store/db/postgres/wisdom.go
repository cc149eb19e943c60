package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rasalabs/rasa/store"
)

func (d *DB) GetDailyTip(ctx context.Context, find *store.FindTip) (*store.Tip, error) {
	lang := "en"
	if find.Lang != nil {
		lang = *find.Lang
	}

	var count int
	if err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tip WHERE lang = `+placeholder(1), lang).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count tips: %w", err)
	}
	if count == 0 && lang != "en" {
		fallback := "en"
		return d.GetDailyTip(ctx, &store.FindTip{Lang: &fallback})
	}
	if count == 0 {
		return nil, sql.ErrNoRows
	}

	offset := time.Now().YearDay() % count
	tip := &store.Tip{}
	err := d.db.QueryRowContext(ctx,
		`SELECT id, content, lang, source FROM tip WHERE lang = `+placeholder(1)+` ORDER BY id LIMIT 1 OFFSET `+placeholder(2),
		lang, offset,
	).Scan(&tip.ID, &tip.Content, &tip.Lang, &tip.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily tip: %w", err)
	}
	return tip, nil
}

func (d *DB) GetSeasonalWisdom(ctx context.Context, find *store.FindWisdom) (*store.Wisdom, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.Season != nil {
		where, args = append(where, "season = "+placeholder(len(args)+1)), append(args, strings.ToLower(*find.Season))
	}
	if find.Lang != nil {
		where, args = append(where, "lang = "+placeholder(len(args)+1)), append(args, *find.Lang)
	}

	query := `SELECT id, season, content, lang FROM wisdom WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id LIMIT 1`
	wisdom := &store.Wisdom{}
	err := d.db.QueryRowContext(ctx, query, args...).Scan(&wisdom.ID, &wisdom.Season, &wisdom.Content, &wisdom.Lang)
	if err == sql.ErrNoRows && find.Lang != nil && *find.Lang != "en" {
		fallback := "en"
		return d.GetSeasonalWisdom(ctx, &store.FindWisdom{Season: find.Season, Lang: &fallback})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seasonal wisdom: %w", err)
	}
	return wisdom, nil
}

func (d *DB) ListRemedies(ctx context.Context, find *store.FindRemedy) ([]*store.Remedy, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.Query != nil && *find.Query != "" {
		pattern := "%" + strings.ToLower(*find.Query) + "%"
		where = append(where, "(LOWER(name) LIKE "+placeholder(len(args)+1)+" OR LOWER(content) LIKE "+placeholder(len(args)+2)+" OR LOWER(dosha) LIKE "+placeholder(len(args)+3)+")")
		args = append(args, pattern, pattern, pattern)
	}
	if find.Dosha != nil {
		where, args = append(where, "dosha = "+placeholder(len(args)+1)), append(args, strings.ToLower(*find.Dosha))
	}

	query := `SELECT id, name, dosha, content, lang FROM remedy WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id`
	if find.Limit != nil {
		query += fmt.Sprintf(" LIMIT %d", *find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list remedies: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Remedy, 0)
	for rows.Next() {
		r := &store.Remedy{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Dosha, &r.Content, &r.Lang); err != nil {
			return nil, fmt.Errorf("failed to scan remedy: %w", err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate remedies: %w", err)
	}
	return list, nil
}
