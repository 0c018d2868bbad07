package controller

import (
	"context"
	"fmt"
	"slices"

	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/workbook"
)

// ManagedRows lists the week's rows the caller may manage, annotated with
// fill state and per-side edit permissions. The caller's own games sort
// first, then ascending game number.
func (c *controller) ManagedRows(ctx context.Context, role model.Role, week string) ([]model.LocatedRow, error) {
	if role.Kind == model.ROLE_NONE {
		return nil, nil
	}

	week = model.NormalizeWeek(week)
	if week == "" {
		var err error
		if week, err = c.activeWeek(ctx); err != nil {
			return nil, err
		}
	}

	rows, err := c.workbook.GetRange(ctx, workbook.WeekRange(week))
	if err != nil {
		return nil, fmt.Errorf("error reading week range for %s: %w", week, err)
	}

	located := make([]model.LocatedRow, 0, len(rows))
	for i, raw := range rows {
		m, ok := workbook.ParseMatchRow(week, raw)
		if !ok {
			continue
		}
		lr := locate(m, i+1, role)
		if managedBy(role, &lr) {
			located = append(located, lr)
		}
	}

	slices.SortStableFunc(located, func(a, b model.LocatedRow) int {
		if a.IsMyGame != b.IsMyGame {
			if a.IsMyGame {
				return -1
			}
			return 1
		}
		return a.Game - b.Game
	})
	return located, nil
}

// locateRow reads a single row of a week sheet by its 1-based index within
// the week range. The second return is false when the index points past the
// schedule or at a row that isn't a real game.
func (c *controller) locateRow(ctx context.Context, role model.Role, week string, rowIdx int) (model.LocatedRow, bool, error) {
	if rowIdx <= 0 {
		return model.LocatedRow{}, false, nil
	}

	rows, err := c.workbook.GetRange(ctx, workbook.WeekRowRange(week, rowIdx))
	if err != nil {
		return model.LocatedRow{}, false, fmt.Errorf("error reading row %d of %s: %w", rowIdx, week, err)
	}
	if len(rows) == 0 {
		return model.LocatedRow{}, false, nil
	}

	m, ok := workbook.ParseMatchRow(week, rows[0])
	if !ok {
		return model.LocatedRow{}, false, nil
	}
	return locate(m, rowIdx, role), true, nil
}

func locate(m model.MatchRow, rowIdx int, role model.Role) model.LocatedRow {
	return model.LocatedRow{
		MatchRow:      m,
		RowIdx:        rowIdx,
		AlreadyFilled: m.Reported() || m.Away.Points != nil || m.Home.Points != nil,
		IsMyGame:      m.Involves(role.PlayerID),
		CanEditAway:   role.CanEditSide(m.Away.Team),
		CanEditHome:   role.CanEditSide(m.Home.Team),
	}
}

// managedBy applies the visibility rules: admins see everything, captains
// see their teams' games plus their own, players only their own.
func managedBy(role model.Role, lr *model.LocatedRow) bool {
	switch role.Kind {
	case model.ROLE_ADMIN:
		return true
	case model.ROLE_CAPTAIN:
		return lr.IsMyGame || role.CaptainOf(lr.Away.Team) || role.CaptainOf(lr.Home.Team)
	case model.ROLE_PLAYER:
		return lr.IsMyGame
	default:
		return false
	}
}
