package model

import "strings"

type Side string

const (
	SIDE_AWAY Side = "away"
	SIDE_HOME Side = "home"
)

// MatchSide is one half of a scheduled game as it appears in the week sheet.
// PlayerID is the league participant identifier (NCX id), Player the display
// name shown on standings.
type MatchSide struct {
	PlayerID string
	Player   string
	Team     string
	Record   string
	Points   *int
	MOV      *int
}

// MatchRow is one scheduled game within a week. The workbook is the source
// of truth; the relational copy is keyed by (Week, Game).
type MatchRow struct {
	Week     string
	Game     int
	Away     MatchSide
	Home     MatchSide
	Scenario Scenario
}

// Reported is derived from the scenario, never stored on its own.
func (m *MatchRow) Reported() bool {
	return m.Scenario != SCENARIO_UNKNOWN
}

// Involves reports whether the given NCX player id is on either side,
// case-insensitive.
func (m *MatchRow) Involves(playerID string) bool {
	if playerID == "" {
		return false
	}
	return strings.EqualFold(m.Away.PlayerID, playerID) ||
		strings.EqualFold(m.Home.PlayerID, playerID)
}

// LocatedRow is a MatchRow annotated with the caller's permissions on it.
type LocatedRow struct {
	MatchRow
	RowIdx        int // 1-based position within the week's sheet range
	AlreadyFilled bool
	IsMyGame      bool
	CanEditAway   bool
	CanEditHome   bool
}

// CurrentValues is attached to an ALREADY_FILLED rejection so the caller can
// show what would be overwritten and confirm.
type CurrentValues struct {
	AwayScore *int     `json:"awayScore"`
	HomeScore *int     `json:"homeScore"`
	Scenario  Scenario `json:"scenario"`
}

// ReportRequest is a submitted change set for one row. All change groups are
// optional; an empty request is a no-op.
type ReportRequest struct {
	Week      string  `json:"week"`
	Row       int     `json:"row"`
	AwayScore *int    `json:"awayScore,omitempty"`
	HomeScore *int    `json:"homeScore,omitempty"`
	Scenario  string  `json:"scenario,omitempty"`
	AwayID    string  `json:"awayId,omitempty"`
	HomeID    string  `json:"homeId,omitempty"`
	AwayList  *string `json:"awayList,omitempty"`
	HomeList  *string `json:"homeList,omitempty"`
	Force     bool    `json:"force,omitempty"`
}

// HasScoreChange reports whether the request carries any score or scenario
// change at all, valid or not.
func (r *ReportRequest) HasScoreChange() bool {
	return r.AwayScore != nil || r.HomeScore != nil || r.Scenario != ""
}

// ReportResult is the outcome of a report submission.
type ReportResult struct {
	OK      bool           `json:"ok"`
	Reason  ReasonCode     `json:"reason,omitempty"`
	Current *CurrentValues `json:"current,omitempty"`
}

func Rejected(reason ReasonCode) *ReportResult {
	return &ReportResult{OK: false, Reason: reason}
}
