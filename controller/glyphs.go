package controller

import (
	"math"
	"net/url"
	"strings"

	"github.com/gregkash16/ncx-sub000/model"
)

// validListLink accepts links to the two supported list builders. An empty
// link is valid and means "clear the stored link".
func validListLink(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" {
		return true
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.Contains(u.Host, "yasb.app") || strings.Contains(u.Host, "launchbaynext.app")
}

// deriveListStats computes the summary fields for a parsed list: ship count,
// the glyph string in pilot order, and the average initiative rounded to one
// decimal. Pilots whose identifier isn't in the initiative table are left
// out of the average; if none resolve the average is nil.
func deriveListStats(list *model.ParsedList) (glyphs string, ships int, avgInit *float64) {
	ships = len(list.Pilots)

	var b strings.Builder
	sum, known := 0, 0
	for _, p := range list.Pilots {
		b.WriteString(model.GlyphForShip(p.Ship))
		if init, ok := model.InitiativeForPilot(p.XWS); ok {
			sum += init
			known++
		}
	}
	glyphs = b.String()

	if known > 0 {
		avg := math.Round(float64(sum)/float64(known)*10) / 10
		avgInit = &avg
	}
	return glyphs, ships, avgInit
}
