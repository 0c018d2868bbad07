package model

// Pilot is one entry of a normalized list build as returned by an upstream
// provider. XWS is the stable identifier; it may be empty when the provider
// couldn't resolve one.
type Pilot struct {
	XWS  string `json:"xws"`
	Ship string `json:"ship"`
	Name string `json:"name"`
}

// ParsedList is the canonical pilots structure from a list provider.
type ParsedList struct {
	Faction string  `json:"faction"`
	Pilots  []Pilot `json:"pilots"`
}

// ListSubmission is one (week, game, side) list link and its derived fields.
// The derived fields are all present after a successful resolution or all
// absent; they are recomputed from the URL, never hand-edited.
type ListSubmission struct {
	Week    string   `json:"week"`
	Game    int      `json:"game"`
	Side    Side     `json:"side"`
	URL     string   `json:"url"`
	Raw     []byte   `json:"-"`
	Glyphs  *string  `json:"glyphs"`
	Ships   *int     `json:"ships"`
	AvgInit *float64 `json:"avgInit"`
}

func (l *ListSubmission) Resolved() bool {
	return l.Glyphs != nil && l.Ships != nil
}
