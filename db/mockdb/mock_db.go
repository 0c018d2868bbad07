package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gregkash16/ncx-sub000/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) ReplaceMatches(ctx context.Context, rows []model.MatchRow) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) ReplacePlayerStats(ctx context.Context, rows []model.PlayerStats) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) ReplaceAllTimeStats(ctx context.Context, rows []model.AllTimeStats) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) ReplaceStandings(ctx context.Context, rows []model.StandingsRow) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) ReplaceSchedule(ctx context.Context, rows []model.ScheduleRow) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) ReplaceAggregate(ctx context.Context, table string, rows []model.AggregateRow) error {
	args := db.Called(ctx, table, rows)
	return args.Error(0)
}

func (db *DB) SetCurrentWeek(ctx context.Context, week string) error {
	args := db.Called(ctx, week)
	return args.Error(0)
}

func (db *DB) CurrentWeek(ctx context.Context) (string, error) {
	args := db.Called(ctx)
	return args.String(0), args.Error(1)
}

func (db *DB) ReplaceMatch(ctx context.Context, row model.MatchRow) error {
	args := db.Called(ctx, row)
	return args.Error(0)
}

func (db *DB) MatchesByWeek(ctx context.Context, week string) ([]model.MatchRow, error) {
	args := db.Called(ctx, week)

	var r []model.MatchRow
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MatchRow)
	}
	return r, args.Error(1)
}

func (db *DB) UpsertListURLs(ctx context.Context, subs []model.ListSubmission) error {
	args := db.Called(ctx, subs)
	return args.Error(0)
}

func (db *DB) UpdateListDerived(ctx context.Context, sub *model.ListSubmission) error {
	args := db.Called(ctx, sub)
	return args.Error(0)
}

func (db *DB) ListsForGame(ctx context.Context, week string, game int) ([]model.ListSubmission, error) {
	args := db.Called(ctx, week, game)

	var r []model.ListSubmission
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ListSubmission)
	}
	return r, args.Error(1)
}

func (db *DB) ListsByWeek(ctx context.Context, week string) ([]model.ListSubmission, error) {
	args := db.Called(ctx, week)

	var r []model.ListSubmission
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ListSubmission)
	}
	return r, args.Error(1)
}

func (db *DB) ListsMissingDerived(ctx context.Context) ([]model.ListSubmission, error) {
	args := db.Called(ctx)

	var r []model.ListSubmission
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ListSubmission)
	}
	return r, args.Error(1)
}

func (db *DB) Standings(ctx context.Context) ([]model.StandingsRow, error) {
	args := db.Called(ctx)

	var r []model.StandingsRow
	if args.Get(0) != nil {
		r = args.Get(0).([]model.StandingsRow)
	}
	return r, args.Error(1)
}

func (db *DB) PlayerStats(ctx context.Context) ([]model.PlayerStats, error) {
	args := db.Called(ctx)

	var r []model.PlayerStats
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerStats)
	}
	return r, args.Error(1)
}

func (db *DB) Subscribers(ctx context.Context) ([]model.PushSubscriber, error) {
	args := db.Called(ctx)

	var r []model.PushSubscriber
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PushSubscriber)
	}
	return r, args.Error(1)
}

func (db *DB) DeleteSubscriber(ctx context.Context, endpoint string) error {
	args := db.Called(ctx, endpoint)
	return args.Error(0)
}
