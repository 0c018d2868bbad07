package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gregkash16/ncx-sub000/model"
)

const upsertListURL = `INSERT INTO lists (week, game, side, url)
	VALUES (@week, @game, @side, @url)
	ON CONFLICT (week, game, side) DO UPDATE SET
		url      = EXCLUDED.url,
		raw      = CASE WHEN lists.url IS DISTINCT FROM EXCLUDED.url THEN NULL ELSE lists.raw END,
		glyphs   = CASE WHEN lists.url IS DISTINCT FROM EXCLUDED.url THEN NULL ELSE lists.glyphs END,
		ships    = CASE WHEN lists.url IS DISTINCT FROM EXCLUDED.url THEN NULL ELSE lists.ships END,
		avg_init = CASE WHEN lists.url IS DISTINCT FROM EXCLUDED.url THEN NULL ELSE lists.avg_init END`

func (db *postgresDB) UpsertListURLs(ctx context.Context, subs []model.ListSubmission) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range subs {
		args := pgx.NamedArgs{
			"week": s.Week,
			"game": s.Game,
			"side": string(s.Side),
			"url":  s.URL,
		}
		if _, err := tx.Exec(ctx, upsertListURL, args); err != nil {
			return fmt.Errorf("error upserting list (%s, %d, %s): %w", s.Week, s.Game, s.Side, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing list upserts: %w", err)
	}
	return nil
}

// UpdateListDerived stores a derivation result. A nil Glyphs/Ships pair
// records "unresolved" by clearing all derived fields together.
func (db *postgresDB) UpdateListDerived(ctx context.Context, sub *model.ListSubmission) error {
	const query = `UPDATE lists SET
			raw = @raw, glyphs = @glyphs, ships = @ships, avg_init = @avgInit, updated = @updated
		WHERE week = @week AND game = @game AND side = @side`

	var raw any
	if sub.Raw != nil {
		raw = sub.Raw
	}
	args := pgx.NamedArgs{
		"week":    sub.Week,
		"game":    sub.Game,
		"side":    string(sub.Side),
		"raw":     raw,
		"glyphs":  sub.Glyphs,
		"ships":   sub.Ships,
		"avgInit": sub.AvgInit,
		"updated": pgtype.Timestamptz{Time: db.clock.Now().UTC(), Valid: true},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error updating derived list fields (%s, %d, %s): %w", sub.Week, sub.Game, sub.Side, err)
	}
	return nil
}

const selectLists = `SELECT week, game, side, url, raw, glyphs, ships, avg_init FROM lists`

func (db *postgresDB) ListsForGame(ctx context.Context, week string, game int) ([]model.ListSubmission, error) {
	query := selectLists + ` WHERE week=@week AND game=@game ORDER BY side`
	return db.queryLists(ctx, query, pgx.NamedArgs{"week": week, "game": game})
}

func (db *postgresDB) ListsByWeek(ctx context.Context, week string) ([]model.ListSubmission, error) {
	query := selectLists + ` WHERE week=@week ORDER BY game, side`
	return db.queryLists(ctx, query, pgx.NamedArgs{"week": week})
}

func (db *postgresDB) ListsMissingDerived(ctx context.Context) ([]model.ListSubmission, error) {
	query := selectLists + ` WHERE url <> '' AND glyphs IS NULL ORDER BY week, game, side`
	return db.queryLists(ctx, query, pgx.NamedArgs{})
}

func (db *postgresDB) queryLists(ctx context.Context, query string, args pgx.NamedArgs) ([]model.ListSubmission, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying lists: %w", err)
	}
	defer rows.Close()

	results := make([]model.ListSubmission, 0, 8)
	for rows.Next() {
		var s model.ListSubmission
		var side string
		if err := rows.Scan(&s.Week, &s.Game, &side, &s.URL, &s.Raw, &s.Glyphs, &s.Ships, &s.AvgInit); err != nil {
			return nil, fmt.Errorf("error scanning list row: %w", err)
		}
		s.Side = model.Side(side)
		results = append(results, s)
	}
	return results, rows.Err()
}

func (db *postgresDB) Subscribers(ctx context.Context) ([]model.PushSubscriber, error) {
	rows, err := db.pool.Query(ctx, `SELECT endpoint, p256dh, auth, teams FROM push_subscribers`)
	if err != nil {
		return nil, fmt.Errorf("error querying subscribers: %w", err)
	}
	defer rows.Close()

	results := make([]model.PushSubscriber, 0, 16)
	for rows.Next() {
		var s model.PushSubscriber
		if err := rows.Scan(&s.Endpoint, &s.P256dh, &s.Auth, &s.Teams); err != nil {
			return nil, fmt.Errorf("error scanning subscriber row: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func (db *postgresDB) DeleteSubscriber(ctx context.Context, endpoint string) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM push_subscribers WHERE endpoint=@endpoint`,
		pgx.NamedArgs{"endpoint": endpoint})
	if err != nil {
		return fmt.Errorf("error deleting subscriber: %w", err)
	}
	return nil
}
