package workbook

import (
	"testing"

	"github.com/gregkash16/ncx-sub000/model"
)

func TestParseMatchRow(t *testing.T) {
	row := []string{
		"12", "NCX101", "Alice", "Foxes", "3-1", "20", "6",
		"ASSAULT",
		"14", "-6", "1-3", "Wolfpack", "Bob", "NCX202",
	}

	m, ok := ParseMatchRow("WEEK 4", row)
	if !ok {
		t.Fatal("expected row to parse")
	}
	if m.Game != 12 {
		t.Errorf("game incorrect, wanted: 12, got: %d", m.Game)
	}
	if m.Away.PlayerID != "NCX101" || m.Away.Team != "Foxes" {
		t.Errorf("away side incorrect: %+v", m.Away)
	}
	if m.Home.PlayerID != "NCX202" || m.Home.Team != "Wolfpack" {
		t.Errorf("home side incorrect: %+v", m.Home)
	}
	if m.Away.Points == nil || *m.Away.Points != 20 {
		t.Errorf("away points incorrect: %v", m.Away.Points)
	}
	if m.Home.MOV == nil || *m.Home.MOV != -6 {
		t.Errorf("home mov incorrect: %v", m.Home.MOV)
	}
	if m.Scenario != model.SCENARIO_ASSAULT {
		t.Errorf("scenario incorrect: %s", m.Scenario)
	}
	if !m.Reported() {
		t.Error("expected row to be reported")
	}
}

func TestParseMatchRow_unreported(t *testing.T) {
	// The sheet API drops trailing empty cells, so an unreported row can be
	// short.
	row := []string{"3", "NCX101", "Alice", "Foxes", "0-0", "", "", "", "", "", "0-0", "Wolfpack", "Bob"}

	m, ok := ParseMatchRow("WEEK 1", row)
	if !ok {
		t.Fatal("expected row to parse")
	}
	if m.Reported() {
		t.Error("expected row to be unreported")
	}
	if m.Away.Points != nil || m.Home.Points != nil {
		t.Error("expected nil points on unreported row")
	}
	if m.Home.PlayerID != "" {
		t.Errorf("expected empty home id, got '%s'", m.Home.PlayerID)
	}
}

func TestParseMatchRow_invalid(t *testing.T) {
	tests := map[string][]string{
		"blank game":      {"", "NCX101", "Alice", "Foxes"},
		"non-numeric":     {"BYE", "NCX101", "Alice", "Foxes"},
		"zero game":       {"0", "NCX101", "Alice", "Foxes"},
		"negative game":   {"-2", "NCX101", "Alice", "Foxes"},
		"both teams gone": {"5", "NCX101", "Alice", "", "", "", "", "", "", "", "", "", "Bob", "NCX202"},
		"empty row":       {},
	}

	for name, row := range tests {
		t.Run(name, func(t *testing.T) {
			if _, ok := ParseMatchRow("WEEK 2", row); ok {
				t.Error("expected row to be rejected")
			}
		})
	}
}
