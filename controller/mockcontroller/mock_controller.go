package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gregkash16/ncx-sub000/model"
)

type C struct {
	mock.Mock
}

func (c *C) ResolveRole(ctx context.Context, discordID string) (model.Role, error) {
	args := c.Called(ctx, discordID)
	return args.Get(0).(model.Role), args.Error(1)
}

func (c *C) ManagedRows(ctx context.Context, role model.Role, week string) ([]model.LocatedRow, error) {
	args := c.Called(ctx, role, week)

	var r []model.LocatedRow
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LocatedRow)
	}
	return r, args.Error(1)
}

func (c *C) SubmitReport(ctx context.Context, role model.Role, req *model.ReportRequest) (*model.ReportResult, error) {
	args := c.Called(ctx, role, req)

	var r *model.ReportResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.ReportResult)
	}
	return r, args.Error(1)
}

func (c *C) SyncAll(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) SyncLists(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
	wg.Done()
}

func (c *C) CurrentWeek(ctx context.Context) (string, error) {
	args := c.Called(ctx)
	return args.String(0), args.Error(1)
}

func (c *C) MatchesByWeek(ctx context.Context, week string) ([]model.MatchRow, error) {
	args := c.Called(ctx, week)

	var r []model.MatchRow
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MatchRow)
	}
	return r, args.Error(1)
}

func (c *C) Standings(ctx context.Context) ([]model.StandingsRow, error) {
	args := c.Called(ctx)

	var r []model.StandingsRow
	if args.Get(0) != nil {
		r = args.Get(0).([]model.StandingsRow)
	}
	return r, args.Error(1)
}

func (c *C) PlayerStats(ctx context.Context) ([]model.PlayerStats, error) {
	args := c.Called(ctx)

	var r []model.PlayerStats
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerStats)
	}
	return r, args.Error(1)
}

func (c *C) ListsByWeek(ctx context.Context, week string) ([]model.ListSubmission, error) {
	args := c.Called(ctx, week)

	var r []model.ListSubmission
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ListSubmission)
	}
	return r, args.Error(1)
}
