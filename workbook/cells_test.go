package workbook

import "testing"

func TestCellFloat(t *testing.T) {
	tests := map[string]struct {
		input string
		want  *float64
	}{
		"integer":       {input: "20", want: f(20)},
		"decimal":       {input: "3.5", want: f(3.5)},
		"padded":        {input: " 14 ", want: f(14)},
		"thousands":     {input: "1,250", want: f(1250)},
		"percent":       {input: "62.5%", want: f(62.5)},
		"blank":         {input: "", want: nil},
		"spaces only":   {input: "   ", want: nil},
		"div by zero":   {input: "#DIV/0!", want: nil},
		"not available": {input: "#N/A", want: nil},
		"value error":   {input: "#VALUE!", want: nil},
		"ref error":     {input: "#REF!", want: nil},
		"not a number":  {input: "forfeit", want: nil},
		"trailing junk": {input: "20pts", want: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := CellFloat(tc.input)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("nil mismatch, wanted: %v, got: %v", tc.want, got)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("value incorrect, wanted: %v, got: %v", *tc.want, *got)
			}
		})
	}
}

func TestCellInt(t *testing.T) {
	if got := CellInt("20"); got == nil || *got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
	if got := CellInt("19.9"); got == nil || *got != 19 {
		t.Errorf("expected truncation to 19, got %v", got)
	}
	if got := CellInt("#DIV/0!"); got != nil {
		t.Errorf("expected nil for error sentinel, got %v", got)
	}
}

func TestCellString(t *testing.T) {
	if got := CellString(" Foxes "); got != "Foxes" {
		t.Errorf("expected 'Foxes', got '%s'", got)
	}
	if got := CellString("#N/A"); got != "" {
		t.Errorf("expected empty string for sentinel, got '%s'", got)
	}
}

func f(v float64) *float64 { return &v }
