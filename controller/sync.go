package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/workbook"
)

// SyncAll refreshes every read-model table from its workbook range. Each
// refresh is idempotent, so overlapping runs converge on the current
// workbook snapshot.
func (c *controller) SyncAll(ctx context.Context) error {
	start := time.Now()
	log.Printf("full sync starting at %v", start.Format(time.DateTime))

	week, err := c.activeWeek(ctx)
	if err != nil {
		return err
	}

	errs := []error{
		c.db.SetCurrentWeek(ctx, week),
		c.syncMatches(ctx, week),
		c.syncPlayerStats(ctx),
		c.syncAllTimeStats(ctx),
		c.syncStandings(ctx),
		c.syncSchedule(ctx),
		c.syncAggregates(ctx),
		c.syncListURLs(ctx),
	}

	log.Printf("full sync finished, took %v", time.Since(start))
	return errors.Join(errs...)
}

// syncAfterReport runs the post-write synchronization for one report: the
// just-submitted list links, the single-row match replace with list
// re-derivation, then the wholesale refreshes.
func (c *controller) syncAfterReport(ctx context.Context, week string, rowIdx int, subs []model.ListSubmission) error {
	var errs []error
	if len(subs) > 0 {
		errs = append(errs, c.db.UpsertListURLs(ctx, subs))
	}
	errs = append(errs, c.syncMatchRow(ctx, week, rowIdx))
	errs = append(errs, c.SyncAll(ctx))
	return errors.Join(errs...)
}

// syncMatchRow replaces the one relational match row for a just-edited sheet
// row and re-derives both of its list submissions.
func (c *controller) syncMatchRow(ctx context.Context, week string, rowIdx int) error {
	rows, err := c.workbook.GetRange(ctx, workbook.WeekRowRange(week, rowIdx))
	if err != nil {
		return fmt.Errorf("error reading row %d of %s: %w", rowIdx, week, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("row %d of %s is empty", rowIdx, week)
	}
	m, ok := workbook.ParseMatchRow(week, rows[0])
	if !ok {
		return fmt.Errorf("row %d of %s is not a scheduled game", rowIdx, week)
	}

	if err := c.db.ReplaceMatch(ctx, m); err != nil {
		return err
	}

	subs, err := c.db.ListsForGame(ctx, week, m.Game)
	if err != nil {
		return err
	}
	var errs []error
	for i := range subs {
		errs = append(errs, c.deriveAndStore(ctx, &subs[i]))
	}
	return errors.Join(errs...)
}

// SyncLists re-resolves stored links whose derived fields are unset, either
// because a resolver was down earlier or because the link changed.
func (c *controller) SyncLists(ctx context.Context) error {
	subs, err := c.db.ListsMissingDerived(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for i := range subs {
		errs = append(errs, c.deriveAndStore(ctx, &subs[i]))
	}
	return errors.Join(errs...)
}

// deriveAndStore resolves one list link and stores the derived fields. An
// unresolvable link stores the cleared all-absent state, which is valid.
func (c *controller) deriveAndStore(ctx context.Context, sub *model.ListSubmission) error {
	sub.Raw, sub.Glyphs, sub.Ships, sub.AvgInit = nil, nil, nil, nil

	if sub.URL != "" {
		if list, raw := c.resolveList(ctx, sub.URL); list != nil {
			glyphs, ships, avg := deriveListStats(list)
			sub.Raw = raw
			sub.Glyphs = &glyphs
			sub.Ships = &ships
			sub.AvgInit = avg
		}
	}
	return c.db.UpdateListDerived(ctx, sub)
}

func (c *controller) resolveList(ctx context.Context, link string) (*model.ParsedList, []byte) {
	r := c.resolverFor(link)
	if r == nil {
		return nil, nil
	}
	list, raw, err := r.Resolve(ctx, link)
	if err != nil {
		log.Printf("error resolving list %s: %v", link, err)
		return nil, nil
	}
	return list, raw
}

func (c *controller) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

			if err := c.SyncAll(ctx); err != nil {
				log.Printf("%v", err)
			}
			if err := c.SyncLists(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}

// syncMatches rebuilds the match table from every week sheet up to the
// active week.
func (c *controller) syncMatches(ctx context.Context, currentWeek string) error {
	n := model.WeekNumber(currentWeek)
	all := make([]model.MatchRow, 0, n*16)
	for i := 1; i <= n; i++ {
		week := fmt.Sprintf("WEEK %d", i)
		rows, err := c.workbook.GetRange(ctx, workbook.WeekRange(week))
		if err != nil {
			return fmt.Errorf("error reading %s: %w", week, err)
		}
		for _, raw := range rows {
			if m, ok := workbook.ParseMatchRow(week, raw); ok {
				all = append(all, m)
			}
		}
	}
	return c.db.ReplaceMatches(ctx, all)
}

func (c *controller) syncPlayerStats(ctx context.Context) error {
	rows, err := c.workbook.GetRange(ctx, workbook.StatsRange)
	if err != nil {
		return fmt.Errorf("error reading stats range: %w", err)
	}

	stats := make([]model.PlayerStats, 0, len(rows))
	for _, row := range rows {
		s := model.PlayerStats{
			PlayerID:      workbook.Cell(row, 0),
			Name:          workbook.Cell(row, 1),
			Team:          workbook.Cell(row, 2),
			Wins:          workbook.CellInt(workbook.Cell(row, 3)),
			Losses:        workbook.CellInt(workbook.Cell(row, 4)),
			PointsFor:     workbook.CellFloat(workbook.Cell(row, 5)),
			PointsAgainst: workbook.CellFloat(workbook.Cell(row, 6)),
			AvgMOV:        workbook.CellFloat(workbook.Cell(row, 7)),
			Seasons:       splitSeasons(workbook.Cell(row, 8)),
		}
		if s.PlayerID == "" && s.Name == "" {
			continue
		}
		stats = append(stats, s)
	}
	return c.db.ReplacePlayerStats(ctx, stats)
}

func (c *controller) syncAllTimeStats(ctx context.Context) error {
	rows, err := c.workbook.GetRange(ctx, workbook.AllTimeRange)
	if err != nil {
		return fmt.Errorf("error reading all-time range: %w", err)
	}

	stats := make([]model.AllTimeStats, 0, len(rows))
	for _, row := range rows {
		s := model.AllTimeStats{
			PlayerID:  workbook.Cell(row, 0),
			Name:      workbook.Cell(row, 1),
			Seasons:   workbook.CellInt(workbook.Cell(row, 2)),
			Games:     workbook.CellInt(workbook.Cell(row, 3)),
			Wins:      workbook.CellInt(workbook.Cell(row, 4)),
			WinPct:    workbook.CellFloat(workbook.Cell(row, 5)),
			AvgPoints: workbook.CellFloat(workbook.Cell(row, 6)),
		}
		if s.PlayerID == "" && s.Name == "" {
			continue
		}
		stats = append(stats, s)
	}
	return c.db.ReplaceAllTimeStats(ctx, stats)
}

func (c *controller) syncStandings(ctx context.Context) error {
	rows, err := c.workbook.GetRange(ctx, workbook.StandingsRange)
	if err != nil {
		return fmt.Errorf("error reading standings range: %w", err)
	}

	standings := make([]model.StandingsRow, 0, len(rows))
	for _, row := range rows {
		s := model.StandingsRow{
			Rank:      workbook.CellInt(workbook.Cell(row, 0)),
			Team:      workbook.Cell(row, 1),
			Wins:      workbook.CellInt(workbook.Cell(row, 2)),
			Losses:    workbook.CellInt(workbook.Cell(row, 3)),
			GamePct:   workbook.CellFloat(workbook.Cell(row, 4)),
			PointsFor: workbook.CellFloat(workbook.Cell(row, 5)),
		}
		if s.Team == "" {
			continue
		}
		standings = append(standings, s)
	}
	return c.db.ReplaceStandings(ctx, standings)
}

func (c *controller) syncSchedule(ctx context.Context) error {
	rows, err := c.workbook.GetRange(ctx, workbook.ScheduleRange)
	if err != nil {
		return fmt.Errorf("error reading schedule range: %w", err)
	}

	schedule := make([]model.ScheduleRow, 0, len(rows))
	for _, row := range rows {
		s := model.ScheduleRow{
			Week: model.NormalizeWeek(workbook.Cell(row, 0)),
			Away: workbook.Cell(row, 1),
			Home: workbook.Cell(row, 2),
		}
		if s.Away == "" && s.Home == "" {
			continue
		}
		schedule = append(schedule, s)
	}
	return c.db.ReplaceSchedule(ctx, schedule)
}

func (c *controller) syncAggregates(ctx context.Context) error {
	var errs []error
	for _, table := range model.AggregateTables {
		a1, ok := workbook.AggregateRange(table)
		if !ok {
			errs = append(errs, fmt.Errorf("no range for aggregate table %s", table))
			continue
		}
		rows, err := c.workbook.GetRange(ctx, a1)
		if err != nil {
			errs = append(errs, fmt.Errorf("error reading %s range: %w", table, err))
			continue
		}

		agg := make([]model.AggregateRow, 0, len(rows))
		for _, row := range rows {
			r := model.AggregateRow{
				Label:     workbook.Cell(row, 0),
				Games:     workbook.CellInt(workbook.Cell(row, 1)),
				Wins:      workbook.CellInt(workbook.Cell(row, 2)),
				AvgPoints: workbook.CellFloat(workbook.Cell(row, 3)),
			}
			if r.Label == "" {
				continue
			}
			agg = append(agg, r)
		}
		errs = append(errs, c.db.ReplaceAggregate(ctx, table, agg))
	}
	return errors.Join(errs...)
}

// syncListURLs mirrors the lists range into the relational store. Upsert
// keyed on (week, game, side) rather than delete-all, so rows added by a
// concurrent report are never lost.
func (c *controller) syncListURLs(ctx context.Context) error {
	rows, err := c.workbook.GetRange(ctx, workbook.ListsRange)
	if err != nil {
		return fmt.Errorf("error reading lists range: %w", err)
	}

	subs := make([]model.ListSubmission, 0, len(rows))
	for _, row := range rows {
		week := model.NormalizeWeek(workbook.Cell(row, 0))
		game := workbook.CellInt(workbook.Cell(row, 1))
		side := model.Side(strings.ToLower(workbook.Cell(row, 2)))
		if week == "" || game == nil || *game <= 0 {
			continue
		}
		if side != model.SIDE_AWAY && side != model.SIDE_HOME {
			continue
		}
		subs = append(subs, model.ListSubmission{
			Week: week,
			Game: *game,
			Side: side,
			URL:  workbook.Cell(row, 3),
		})
	}
	return c.db.UpsertListURLs(ctx, subs)
}

func splitSeasons(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	seasons := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			seasons = append(seasons, p)
		}
	}
	return seasons
}
