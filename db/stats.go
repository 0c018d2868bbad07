package db

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/gregkash16/ncx-sub000/model"
)

func (db *postgresDB) ReplacePlayerStats(ctx context.Context, rows []model.PlayerStats) error {
	const insert = `INSERT INTO player_stats (
			player_id, name, team, wins, losses, points_for, points_against, avg_mov, seasons
		) VALUES (
			@playerID, @name, @team, @wins, @losses, @pointsFor, @pointsAgainst, @avgMOV, @seasons
		)`

	return db.replaceAll(ctx, "player_stats", len(rows), func(tx pgx.Tx) error {
		for _, r := range rows {
			args := pgx.NamedArgs{
				"playerID":      r.PlayerID,
				"name":          r.Name,
				"team":          r.Team,
				"wins":          r.Wins,
				"losses":        r.Losses,
				"pointsFor":     r.PointsFor,
				"pointsAgainst": r.PointsAgainst,
				"avgMOV":        r.AvgMOV,
				"seasons":       r.Seasons,
			}
			if _, err := tx.Exec(ctx, insert, args); err != nil {
				return fmt.Errorf("error inserting player stats (%s): %w", r.PlayerID, err)
			}
		}
		return nil
	})
}

func (db *postgresDB) ReplaceAllTimeStats(ctx context.Context, rows []model.AllTimeStats) error {
	const insert = `INSERT INTO all_time_stats (
			player_id, name, seasons, games, wins, win_pct, avg_points
		) VALUES (
			@playerID, @name, @seasons, @games, @wins, @winPct, @avgPoints
		)`

	return db.replaceAll(ctx, "all_time_stats", len(rows), func(tx pgx.Tx) error {
		for _, r := range rows {
			args := pgx.NamedArgs{
				"playerID":  r.PlayerID,
				"name":      r.Name,
				"seasons":   r.Seasons,
				"games":     r.Games,
				"wins":      r.Wins,
				"winPct":    r.WinPct,
				"avgPoints": r.AvgPoints,
			}
			if _, err := tx.Exec(ctx, insert, args); err != nil {
				return fmt.Errorf("error inserting all-time stats (%s): %w", r.PlayerID, err)
			}
		}
		return nil
	})
}

func (db *postgresDB) ReplaceStandings(ctx context.Context, rows []model.StandingsRow) error {
	const insert = `INSERT INTO standings (rank, team, wins, losses, game_pct, points_for)
		VALUES (@rank, @team, @wins, @losses, @gamePct, @pointsFor)`

	return db.replaceAll(ctx, "standings", len(rows), func(tx pgx.Tx) error {
		for _, r := range rows {
			args := pgx.NamedArgs{
				"rank":      r.Rank,
				"team":      r.Team,
				"wins":      r.Wins,
				"losses":    r.Losses,
				"gamePct":   r.GamePct,
				"pointsFor": r.PointsFor,
			}
			if _, err := tx.Exec(ctx, insert, args); err != nil {
				return fmt.Errorf("error inserting standings row (%s): %w", r.Team, err)
			}
		}
		return nil
	})
}

func (db *postgresDB) ReplaceSchedule(ctx context.Context, rows []model.ScheduleRow) error {
	const insert = `INSERT INTO schedule (week, away_team, home_team)
		VALUES (@week, @awayTeam, @homeTeam)`

	return db.replaceAll(ctx, "schedule", len(rows), func(tx pgx.Tx) error {
		for _, r := range rows {
			args := pgx.NamedArgs{
				"week":     r.Week,
				"awayTeam": r.Away,
				"homeTeam": r.Home,
			}
			if _, err := tx.Exec(ctx, insert, args); err != nil {
				return fmt.Errorf("error inserting schedule row: %w", err)
			}
		}
		return nil
	})
}

func (db *postgresDB) ReplaceAggregate(ctx context.Context, table string, rows []model.AggregateRow) error {
	// The table name is interpolated, so it has to come from the fixed set.
	if !slices.Contains(model.AggregateTables, table) {
		return fmt.Errorf("unknown aggregate table: %s", table)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (label, games, wins, avg_points)
		VALUES (@label, @games, @wins, @avgPoints)`, table)

	return db.replaceAll(ctx, table, len(rows), func(tx pgx.Tx) error {
		for _, r := range rows {
			args := pgx.NamedArgs{
				"label":     r.Label,
				"games":     r.Games,
				"wins":      r.Wins,
				"avgPoints": r.AvgPoints,
			}
			if _, err := tx.Exec(ctx, insert, args); err != nil {
				return fmt.Errorf("error inserting %s row (%s): %w", table, r.Label, err)
			}
		}
		return nil
	})
}

func (db *postgresDB) Standings(ctx context.Context) ([]model.StandingsRow, error) {
	const query = `SELECT rank, team, wins, losses, game_pct, points_for
		FROM standings ORDER BY rank NULLS LAST, team`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying standings: %w", err)
	}
	defer rows.Close()

	results := make([]model.StandingsRow, 0, 12)
	for rows.Next() {
		var r model.StandingsRow
		if err := rows.Scan(&r.Rank, &r.Team, &r.Wins, &r.Losses, &r.GamePct, &r.PointsFor); err != nil {
			return nil, fmt.Errorf("error scanning standings row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (db *postgresDB) PlayerStats(ctx context.Context) ([]model.PlayerStats, error) {
	const query = `SELECT player_id, name, team, wins, losses, points_for, points_against, avg_mov, seasons
		FROM player_stats ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying player stats: %w", err)
	}
	defer rows.Close()

	results := make([]model.PlayerStats, 0, 64)
	for rows.Next() {
		var r model.PlayerStats
		err := rows.Scan(&r.PlayerID, &r.Name, &r.Team, &r.Wins, &r.Losses,
			&r.PointsFor, &r.PointsAgainst, &r.AvgMOV, &r.Seasons)
		if err != nil {
			return nil, fmt.Errorf("error scanning player stats row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// replaceAll wraps the delete-then-insert pattern every wholesale refresh
// uses: one transaction, full delete of the table, then the inserts.
func (db *postgresDB) replaceAll(ctx context.Context, table string, n int, insertFn func(tx pgx.Tx) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return fmt.Errorf("error clearing %s: %w", table, err)
	}
	if err := insertFn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing %s refresh (%d rows): %w", table, n, err)
	}
	return nil
}
