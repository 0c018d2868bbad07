package workbook

import (
	"context"
	"fmt"

	"github.com/gregkash16/ncx-sub000/model"
)

// Workbook is the read-through adapter over the league spreadsheet. The
// workbook offers no transactions; callers express check-then-act logic as
// explicit read-confirm-write steps on top of these primitives.
type Workbook interface {
	GetRange(ctx context.Context, a1 string) ([][]string, error)
	BatchWrite(ctx context.Context, writes []CellWrite) error
	// UpsertListLink writes a list URL into the lists range keyed by
	// (week, game, side), updating the existing row or appending a new one.
	UpsertListLink(ctx context.Context, week string, game int, side model.Side, url string) error
	// FormatScoreCells applies numeric formatting to a row's score cells.
	// Best effort; callers log and swallow failures.
	FormatScoreCells(ctx context.Context, week string, rowIdx int) error
}

// CellWrite is a single-cell write within a batched update.
type CellWrite struct {
	A1    string
	Value any
}

// Fixed ranges of the season workbook.
const (
	RosterRange      = "ROSTERS!A2:B"
	IdentityRange    = "IDS!A2:B"
	StatsRange       = "STATS!A2:I"
	AllTimeRange     = "'ALL TIME'!A2:G"
	StandingsRange   = "STANDINGS!A2:F"
	ScheduleRange    = "SCHEDULE!A2:C"
	ListsRange       = "LISTS!A2:D"
	CurrentWeekRange = "META!B1"
)

// aggregateRanges maps the five advanced-stats tables to their sheet ranges.
var aggregateRanges = map[string]string{
	model.AGG_FACTIONS:     "FACTIONS!A2:D",
	model.AGG_SCENARIOS:    "SCENARIOS!A2:D",
	model.AGG_MARGINS:      "MARGINS!A2:D",
	model.AGG_FIRST_PLAYER: "'FIRST PLAYER'!A2:D",
	model.AGG_LIST_SIZES:   "'LIST SIZES'!A2:D",
}

func AggregateRange(table string) (string, bool) {
	r, ok := aggregateRanges[table]
	return r, ok
}

// Week sheets hold one game per row starting at row 3. Columns A..N:
// game, away id, away player, away team, away record, away points, away mov,
// scenario, home points, home mov, home record, home team, home player,
// home id.
const (
	ColGame       = "A"
	ColAwayID     = "B"
	ColAwayPlayer = "C"
	ColAwayTeam   = "D"
	ColAwayRecord = "E"
	ColAwayPoints = "F"
	ColAwayMOV    = "G"
	ColScenario   = "H"
	ColHomePoints = "I"
	ColHomeMOV    = "J"
	ColHomeRecord = "K"
	ColHomeTeam   = "L"
	ColHomePlayer = "M"
	ColHomeID     = "N"
)

const weekFirstRow = 3

// WeekRange is the full schedule range of one week sheet.
func WeekRange(week string) string {
	return fmt.Sprintf("'%s'!A%d:N", week, weekFirstRow)
}

// WeekRowRange is the full A..N range of a single row within a week sheet,
// addressed by 1-based row index within the week range.
func WeekRowRange(week string, rowIdx int) string {
	r := SheetRow(rowIdx)
	return fmt.Sprintf("'%s'!A%d:N%d", week, r, r)
}

// WeekCell addresses a single cell by column and 1-based row index within
// the week range.
func WeekCell(week, col string, rowIdx int) string {
	return fmt.Sprintf("'%s'!%s%d", week, col, SheetRow(rowIdx))
}

// SheetRow converts a 1-based row index within the week range to the
// absolute sheet row.
func SheetRow(rowIdx int) int {
	return rowIdx + weekFirstRow - 1
}
