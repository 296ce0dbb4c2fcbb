package models

import (
	"testing"
)

func TestTeamKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Liverpool", "liverpool"},
		{"liverpool fc", "liverpool"},
		{"  Liverpool   FC ", "liverpool"},
		{"FC Barcelona", "barcelona"},
		{"Manchester  United", "manchester united"},
		{"A.F.C. Bournemouth", "a f c bournemouth"},
		{"Valencia CF", "valencia"},
		{"FC", "fc"},
		{"", ""},
	}

	for _, tt := range tests {
		result := TeamKey(tt.input)
		if result != tt.expected {
			t.Errorf("TeamKey(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestMatchLabel(t *testing.T) {
	if got := MatchLabel("Arsenal", "Chelsea"); got != "Arsenal vs Chelsea" {
		t.Errorf("MatchLabel = %q", got)
	}
}

func TestFullTimeOddsComplete(t *testing.T) {
	tests := []struct {
		name string
		odds *FullTimeOdds
		want bool
	}{
		{"nil", nil, false},
		{"all present", &FullTimeOdds{Home: Odd(2.1), Draw: Odd(3.2), Away: Odd(3.4)}, true},
		{"missing draw", &FullTimeOdds{Home: Odd(2.1), Away: Odd(3.4)}, false},
		{"zero price", &FullTimeOdds{Home: Odd(0), Draw: Odd(3.2), Away: Odd(3.4)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.odds.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}
