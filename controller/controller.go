package controller

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/gregkash16/ncx-sub000/db"
	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/notify"
	"github.com/gregkash16/ncx-sub000/workbook"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// ResolveRole looks the caller up in the roster and identity ranges.
	// A failed roster read returns RoleNone plus a retryable error, which
	// is different from a clean "no role" result.
	ResolveRole(ctx context.Context, discordID string) (model.Role, error)
	// ManagedRows returns the rows of a week the caller may manage, own
	// games first. An empty week means the active week from the workbook.
	ManagedRows(ctx context.Context, role model.Role, week string) ([]model.LocatedRow, error)
	SubmitReport(ctx context.Context, role model.Role, req *model.ReportRequest) (*model.ReportResult, error)

	// SyncAll refreshes every read-model table from the workbook.
	SyncAll(ctx context.Context) error
	// SyncLists re-resolves stored list links whose derived fields are unset.
	SyncLists(ctx context.Context) error
	RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	// Read-model pass-throughs for the web layer.
	CurrentWeek(ctx context.Context) (string, error)
	MatchesByWeek(ctx context.Context, week string) ([]model.MatchRow, error)
	Standings(ctx context.Context) ([]model.StandingsRow, error)
	PlayerStats(ctx context.Context) ([]model.PlayerStats, error)
	ListsByWeek(ctx context.Context, week string) ([]model.ListSubmission, error)
}

type controller struct {
	clock    clock.Clock
	db       db.DB
	workbook workbook.Workbook
	yasb     listResolver
	lbn      listResolver
	notifier notify.Notifier
	adminID  string
}

func New(clock clock.Clock, db db.DB, wb workbook.Workbook, yasb, lbn listResolver, notifier notify.Notifier, adminID string) (C, error) {
	c := &controller{
		clock:    clock,
		db:       db,
		workbook: wb,
		yasb:     yasb,
		lbn:      lbn,
		notifier: notifier,
		adminID:  normalizeIdentity(adminID),
	}
	return c, nil
}

// listResolver is what the controller needs from a list-normalization
// provider. Both platform clients satisfy it.
type listResolver interface {
	Resolve(ctx context.Context, listURL string) (*model.ParsedList, []byte, error)
}

// resolverFor picks the provider client for a list link by host. A nil
// return means the link belongs to no known provider.
func (c *controller) resolverFor(link string) listResolver {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return nil
	}
	switch {
	case strings.Contains(u.Host, "yasb.app"):
		return c.yasb
	case strings.Contains(u.Host, "launchbaynext.app"):
		return c.lbn
	default:
		return nil
	}
}

func (c *controller) CurrentWeek(ctx context.Context) (string, error) {
	return c.db.CurrentWeek(ctx)
}

func (c *controller) MatchesByWeek(ctx context.Context, week string) ([]model.MatchRow, error) {
	return c.db.MatchesByWeek(ctx, model.NormalizeWeek(week))
}

func (c *controller) Standings(ctx context.Context) ([]model.StandingsRow, error) {
	return c.db.Standings(ctx)
}

func (c *controller) PlayerStats(ctx context.Context) ([]model.PlayerStats, error) {
	return c.db.PlayerStats(ctx)
}

func (c *controller) ListsByWeek(ctx context.Context, week string) ([]model.ListSubmission, error) {
	return c.db.ListsByWeek(ctx, model.NormalizeWeek(week))
}

// activeWeek reads the current-week marker from the workbook, which is
// authoritative over the relational copy.
func (c *controller) activeWeek(ctx context.Context) (string, error) {
	rows, err := c.workbook.GetRange(ctx, workbook.CurrentWeekRange)
	if err != nil {
		return "", fmt.Errorf("error reading current week marker: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", fmt.Errorf("current week marker is empty")
	}
	week := model.NormalizeWeek(rows[0][0])
	if week == "" {
		return "", fmt.Errorf("current week marker is not a week label: %q", rows[0][0])
	}
	return week, nil
}
