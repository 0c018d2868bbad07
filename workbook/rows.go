package workbook

import (
	"github.com/gregkash16/ncx-sub000/model"
)

// Column indices within a week-range row, matching the Col* constants.
const (
	idxGame = iota
	idxAwayID
	idxAwayPlayer
	idxAwayTeam
	idxAwayRecord
	idxAwayPoints
	idxAwayMOV
	idxScenario
	idxHomePoints
	idxHomeMOV
	idxHomeRecord
	idxHomeTeam
	idxHomePlayer
	idxHomeID
)

// ParseMatchRow decodes one week-range row. The second return is false when
// the row isn't a real scheduled game: a non-numeric or non-positive game
// cell, or both team names empty.
func ParseMatchRow(week string, row []string) (model.MatchRow, bool) {
	game := CellInt(Cell(row, idxGame))
	if game == nil || *game <= 0 {
		return model.MatchRow{}, false
	}

	m := model.MatchRow{
		Week: week,
		Game: *game,
		Away: model.MatchSide{
			PlayerID: Cell(row, idxAwayID),
			Player:   Cell(row, idxAwayPlayer),
			Team:     Cell(row, idxAwayTeam),
			Record:   Cell(row, idxAwayRecord),
			Points:   CellInt(Cell(row, idxAwayPoints)),
			MOV:      CellInt(Cell(row, idxAwayMOV)),
		},
		Home: model.MatchSide{
			PlayerID: Cell(row, idxHomeID),
			Player:   Cell(row, idxHomePlayer),
			Team:     Cell(row, idxHomeTeam),
			Record:   Cell(row, idxHomeRecord),
			Points:   CellInt(Cell(row, idxHomePoints)),
			MOV:      CellInt(Cell(row, idxHomeMOV)),
		},
		Scenario: model.ParseScenario(Cell(row, idxScenario)),
	}

	if m.Away.Team == "" && m.Home.Team == "" {
		return model.MatchRow{}, false
	}
	return m, true
}
