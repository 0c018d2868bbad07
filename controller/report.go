package controller

import (
	"context"
	"log"
	"strings"

	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/notify"
	"github.com/gregkash16/ncx-sub000/workbook"
)

// SubmitReport validates and applies a change set for one match row. The
// workbook write is the commit point: once it succeeds the report is
// successful no matter what happens to the sync or the notifications.
func (c *controller) SubmitReport(ctx context.Context, role model.Role, req *model.ReportRequest) (*model.ReportResult, error) {
	if role.Kind == model.ROLE_NONE {
		if role.PlayerID == "" {
			return model.Rejected(model.REASON_NO_PLAYER_ID), nil
		}
		return model.Rejected(model.REASON_NOT_AUTH), nil
	}

	week := model.NormalizeWeek(req.Week)
	if week == "" {
		var err error
		if week, err = c.activeWeek(ctx); err != nil {
			return model.Rejected(model.REASON_SERVER_ERROR), err
		}
	}

	lr, ok, err := c.locateRow(ctx, role, week, req.Row)
	if err != nil {
		return model.Rejected(model.REASON_SERVER_ERROR), err
	}
	if !ok || !managedBy(role, &lr) {
		return model.Rejected(model.REASON_ROW_NOT_YOURS), nil
	}

	// Validate everything before writing anything.
	var writes []workbook.CellWrite
	scoreWrite := false
	if req.HasScoreChange() {
		if req.AwayScore == nil || req.HomeScore == nil || *req.AwayScore < 0 || *req.HomeScore < 0 {
			return model.Rejected(model.REASON_BAD_SCORES), nil
		}
		scenario := model.ParseScenario(req.Scenario)
		if scenario == model.SCENARIO_UNKNOWN {
			return model.Rejected(model.REASON_BAD_SCENARIO), nil
		}
		if lr.AlreadyFilled && !req.Force {
			res := model.Rejected(model.REASON_ALREADY_FILLED)
			res.Current = &model.CurrentValues{
				AwayScore: lr.Away.Points,
				HomeScore: lr.Home.Points,
				Scenario:  lr.Scenario,
			}
			return res, nil
		}
		writes = append(writes,
			workbook.CellWrite{A1: workbook.WeekCell(week, workbook.ColAwayPoints, lr.RowIdx), Value: *req.AwayScore},
			workbook.CellWrite{A1: workbook.WeekCell(week, workbook.ColHomePoints, lr.RowIdx), Value: *req.HomeScore},
			workbook.CellWrite{A1: workbook.WeekCell(week, workbook.ColScenario, lr.RowIdx), Value: string(scenario)},
		)
		scoreWrite = true
	}

	idWrites, res := identifierWrites(role, &lr, req, week)
	if res != nil {
		return res, nil
	}
	writes = append(writes, idWrites...)

	var listSubs []model.ListSubmission
	for _, l := range []struct {
		url  *string
		side model.Side
	}{
		{req.AwayList, model.SIDE_AWAY},
		{req.HomeList, model.SIDE_HOME},
	} {
		if l.url == nil {
			continue
		}
		link := strings.TrimSpace(*l.url)
		if !validListLink(link) {
			return model.Rejected(model.REASON_BAD_LIST_LINK), nil
		}
		listSubs = append(listSubs, model.ListSubmission{Week: week, Game: lr.Game, Side: l.side, URL: link})
	}

	// Commit point: the batched cell write.
	wrote := false
	if len(writes) > 0 {
		if err := c.workbook.BatchWrite(ctx, writes); err != nil {
			return model.Rejected(model.REASON_SERVER_ERROR), err
		}
		wrote = true
	}

	// List links live in their own range, written independently of the
	// match cells.
	for _, sub := range listSubs {
		if err := c.workbook.UpsertListLink(ctx, sub.Week, sub.Game, sub.Side, sub.URL); err != nil {
			if !wrote {
				return model.Rejected(model.REASON_SERVER_ERROR), err
			}
			log.Printf("error upserting list link (%s, %d, %s): %v", sub.Week, sub.Game, sub.Side, err)
			continue
		}
		wrote = true
	}

	if !wrote {
		// Nothing to change is a valid, successful no-op.
		return &model.ReportResult{OK: true}, nil
	}

	if scoreWrite {
		if err := c.workbook.FormatScoreCells(ctx, week, lr.RowIdx); err != nil {
			log.Printf("error formatting score cells (%s row %d): %v", week, lr.RowIdx, err)
		}
	}

	// The workbook is authoritative now. Sync failures degrade freshness
	// of the read models, not the report outcome.
	if err := c.syncAfterReport(ctx, week, lr.RowIdx, listSubs); err != nil {
		log.Printf("error syncing after report (%s row %d): %v", week, lr.RowIdx, err)
	}

	if scoreWrite && c.notifier != nil {
		c.notifier.MatchReported(ctx, &notify.MatchEvent{
			Week:       week,
			Game:       lr.Game,
			AwayTeam:   lr.Away.Team,
			HomeTeam:   lr.Home.Team,
			AwayPlayer: lr.Away.Player,
			HomePlayer: lr.Home.Player,
			AwayScore:  *req.AwayScore,
			HomeScore:  *req.HomeScore,
			Scenario:   model.ParseScenario(req.Scenario),
			ReportedBy: reporterName(role),
		})
	}

	return &model.ReportResult{OK: true}, nil
}

// identifierWrites collects the per-side identifier changes. A change on a
// side the caller can't edit rejects the whole request.
func identifierWrites(role model.Role, lr *model.LocatedRow, req *model.ReportRequest, week string) ([]workbook.CellWrite, *model.ReportResult) {
	var writes []workbook.CellWrite

	if id := strings.TrimSpace(req.AwayID); id != "" && !strings.EqualFold(id, lr.Away.PlayerID) {
		if !lr.CanEditAway {
			return nil, model.Rejected(model.REASON_NOT_AUTH)
		}
		writes = append(writes, workbook.CellWrite{A1: workbook.WeekCell(week, workbook.ColAwayID, lr.RowIdx), Value: id})
	}
	if id := strings.TrimSpace(req.HomeID); id != "" && !strings.EqualFold(id, lr.Home.PlayerID) {
		if !lr.CanEditHome {
			return nil, model.Rejected(model.REASON_NOT_AUTH)
		}
		writes = append(writes, workbook.CellWrite{A1: workbook.WeekCell(week, workbook.ColHomeID, lr.RowIdx), Value: id})
	}
	return writes, nil
}

func reporterName(role model.Role) string {
	if role.Kind == model.ROLE_ADMIN {
		return "admin"
	}
	if role.PlayerID != "" {
		return role.PlayerID
	}
	return string(role.Kind)
}
