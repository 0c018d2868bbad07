package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregkash16/ncx-sub000/model"
)

var (
	ErrNoCurrentWeek = errors.New("no current week set")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

const insertMatch = `INSERT INTO matches (
		week, game,
		away_id, away_player, away_team, away_record, away_points, away_mov,
		scenario,
		home_points, home_mov, home_record, home_team, home_player, home_id
	) VALUES (
		@week, @game,
		@awayID, @awayPlayer, @awayTeam, @awayRecord, @awayPoints, @awayMOV,
		@scenario,
		@homePoints, @homeMOV, @homeRecord, @homeTeam, @homePlayer, @homeID
	)`

func (db *postgresDB) ReplaceMatches(ctx context.Context, rows []model.MatchRow) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("error clearing matches: %w", err)
	}
	for _, m := range rows {
		if _, err := tx.Exec(ctx, insertMatch, namedArgsForMatch(&m)); err != nil {
			return fmt.Errorf("error inserting match (%s, %d): %w", m.Week, m.Game, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing matches refresh: %w", err)
	}
	return nil
}

func (db *postgresDB) ReplaceMatch(ctx context.Context, row model.MatchRow) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"week": row.Week, "game": row.Game}
	if _, err := tx.Exec(ctx, `DELETE FROM matches WHERE week=@week AND game=@game`, args); err != nil {
		return fmt.Errorf("error deleting match (%s, %d): %w", row.Week, row.Game, err)
	}
	if _, err := tx.Exec(ctx, insertMatch, namedArgsForMatch(&row)); err != nil {
		return fmt.Errorf("error inserting match (%s, %d): %w", row.Week, row.Game, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing match replace: %w", err)
	}
	return nil
}

func (db *postgresDB) MatchesByWeek(ctx context.Context, week string) ([]model.MatchRow, error) {
	const query = `SELECT week, game,
			away_id, away_player, away_team, away_record, away_points, away_mov,
			scenario,
			home_points, home_mov, home_record, home_team, home_player, home_id
		FROM matches WHERE week=@week ORDER BY game`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"week": week})
	if err != nil {
		return nil, fmt.Errorf("error querying matches for %s: %w", week, err)
	}
	defer rows.Close()

	results := make([]model.MatchRow, 0, 16)
	for rows.Next() {
		var m model.MatchRow
		var scenario string
		err := rows.Scan(
			&m.Week, &m.Game,
			&m.Away.PlayerID, &m.Away.Player, &m.Away.Team, &m.Away.Record, &m.Away.Points, &m.Away.MOV,
			&scenario,
			&m.Home.Points, &m.Home.MOV, &m.Home.Record, &m.Home.Team, &m.Home.Player, &m.Home.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("error scanning match row: %w", err)
		}
		m.Scenario = model.Scenario(scenario)
		results = append(results, m)
	}
	return results, rows.Err()
}

func (db *postgresDB) SetCurrentWeek(ctx context.Context, week string) error {
	const query = `INSERT INTO current_week (id, week) VALUES (1, @week)
		ON CONFLICT (id) DO UPDATE SET week = EXCLUDED.week`

	if _, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"week": week}); err != nil {
		return fmt.Errorf("error setting current week: %w", err)
	}
	return nil
}

func (db *postgresDB) CurrentWeek(ctx context.Context) (string, error) {
	var week string
	err := db.pool.QueryRow(ctx, `SELECT week FROM current_week WHERE id=1`).Scan(&week)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNoCurrentWeek
		}
		return "", fmt.Errorf("error reading current week: %w", err)
	}
	return week, nil
}

func namedArgsForMatch(m *model.MatchRow) pgx.NamedArgs {
	return pgx.NamedArgs{
		"week":       m.Week,
		"game":       m.Game,
		"awayID":     m.Away.PlayerID,
		"awayPlayer": m.Away.Player,
		"awayTeam":   m.Away.Team,
		"awayRecord": m.Away.Record,
		"awayPoints": m.Away.Points,
		"awayMOV":    m.Away.MOV,
		"scenario":   string(m.Scenario),
		"homePoints": m.Home.Points,
		"homeMOV":    m.Home.MOV,
		"homeRecord": m.Home.Record,
		"homeTeam":   m.Home.Team,
		"homePlayer": m.Home.Player,
		"homeID":     m.Home.PlayerID,
	}
}
