package model

import "testing"

func TestNormalizeWeek(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"canonical":     {input: "WEEK 4", want: "WEEK 4"},
		"lower case":    {input: "week 4", want: "WEEK 4"},
		"no space":      {input: "week4", want: "WEEK 4"},
		"bare number":   {input: "4", want: "WEEK 4"},
		"padded":        {input: "  Week 12 ", want: "WEEK 12"},
		"zero":          {input: "week 0", want: ""},
		"empty":         {input: "", want: ""},
		"not a week":    {input: "finals", want: ""},
		"trailing junk": {input: "week 4b", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NormalizeWeek(tc.input); got != tc.want {
				t.Errorf("week incorrect, wanted: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestWeekNumber(t *testing.T) {
	if n := WeekNumber("WEEK 7"); n != 7 {
		t.Errorf("expected 7, got %d", n)
	}
	if n := WeekNumber("playoffs"); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
}
