package db

import (
	"context"

	"github.com/gregkash16/ncx-sub000/model"
)

type DB interface {
	// Wholesale refreshes: delete everything, re-insert from a workbook
	// snapshot inside one transaction. Safe to retry.
	ReplaceMatches(ctx context.Context, rows []model.MatchRow) error
	ReplacePlayerStats(ctx context.Context, rows []model.PlayerStats) error
	ReplaceAllTimeStats(ctx context.Context, rows []model.AllTimeStats) error
	ReplaceStandings(ctx context.Context, rows []model.StandingsRow) error
	ReplaceSchedule(ctx context.Context, rows []model.ScheduleRow) error
	// ReplaceAggregate refreshes one of the five advanced-stats tables;
	// table must be one of model.AggregateTables.
	ReplaceAggregate(ctx context.Context, table string, rows []model.AggregateRow) error
	SetCurrentWeek(ctx context.Context, week string) error
	CurrentWeek(ctx context.Context) (string, error)

	// ReplaceMatch replaces the single (week, game) row after a report.
	ReplaceMatch(ctx context.Context, row model.MatchRow) error
	MatchesByWeek(ctx context.Context, week string) ([]model.MatchRow, error)

	// Lists are upserted rather than deleted wholesale so concurrently
	// added rows survive a refresh. Upserting a changed URL clears the
	// derived fields until the next derivation pass.
	UpsertListURLs(ctx context.Context, subs []model.ListSubmission) error
	UpdateListDerived(ctx context.Context, sub *model.ListSubmission) error
	ListsForGame(ctx context.Context, week string, game int) ([]model.ListSubmission, error)
	ListsByWeek(ctx context.Context, week string) ([]model.ListSubmission, error)
	ListsMissingDerived(ctx context.Context) ([]model.ListSubmission, error)

	Standings(ctx context.Context) ([]model.StandingsRow, error)
	PlayerStats(ctx context.Context) ([]model.PlayerStats, error)

	Subscribers(ctx context.Context) ([]model.PushSubscriber, error)
	DeleteSubscriber(ctx context.Context, endpoint string) error
}
