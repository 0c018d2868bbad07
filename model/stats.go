package model

// Read-model row types. These mirror workbook ranges one to one and are
// replaced wholesale by the synchronizer; nothing writes them ad hoc.

// PlayerStats is one participant's season line, including the team they
// played for in each season so far.
type PlayerStats struct {
	PlayerID      string   `json:"playerId"`
	Name          string   `json:"name"`
	Team          string   `json:"team"`
	Wins          *int     `json:"wins"`
	Losses        *int     `json:"losses"`
	PointsFor     *float64 `json:"pointsFor"`
	PointsAgainst *float64 `json:"pointsAgainst"`
	AvgMOV        *float64 `json:"avgMov"`
	Seasons       []string `json:"seasons"`
}

// AllTimeStats is a participant's line across every season of the league.
type AllTimeStats struct {
	PlayerID  string   `json:"playerId"`
	Name      string   `json:"name"`
	Seasons   *int     `json:"seasons"`
	Games     *int     `json:"games"`
	Wins      *int     `json:"wins"`
	WinPct    *float64 `json:"winPct"`
	AvgPoints *float64 `json:"avgPoints"`
}

// StandingsRow is one team's line on the overall standings range.
type StandingsRow struct {
	Rank      *int     `json:"rank"`
	Team      string   `json:"team"`
	Wins      *int     `json:"wins"`
	Losses    *int     `json:"losses"`
	GamePct   *float64 `json:"gamePct"`
	PointsFor *float64 `json:"pointsFor"`
}

// ScheduleRow is one team-vs-team pairing on the season schedule range.
type ScheduleRow struct {
	Week string `json:"week"`
	Away string `json:"away"`
	Home string `json:"home"`
}

// AggregateRow is one line of an advanced-stats aggregate table. All five
// aggregates share this shape: a label (faction, scenario, margin bucket,
// first-player, list size) with counters derived in the workbook.
type AggregateRow struct {
	Label     string   `json:"label"`
	Games     *int     `json:"games"`
	Wins      *int     `json:"wins"`
	AvgPoints *float64 `json:"avgPoints"`
}

// Aggregate table names, used both as workbook range keys and as the
// relational table allow-list.
const (
	AGG_FACTIONS     = "agg_factions"
	AGG_SCENARIOS    = "agg_scenarios"
	AGG_MARGINS      = "agg_margins"
	AGG_FIRST_PLAYER = "agg_first_player"
	AGG_LIST_SIZES   = "agg_list_sizes"
)

// AggregateTables is the fixed sync order for the five aggregate refreshes.
var AggregateTables = []string{
	AGG_FACTIONS,
	AGG_SCENARIOS,
	AGG_MARGINS,
	AGG_FIRST_PLAYER,
	AGG_LIST_SIZES,
}
