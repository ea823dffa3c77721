package placement

import (
	"testing"

	"github.com/abhisek/lingocoach/internal/content"
)

func TestMatchOption(t *testing.T) {
	options := []string{"drinks", "drink", "drank"}

	tests := []struct {
		input   string
		wantIdx int
		wantOK  bool
	}{
		{"B", 1, true},
		{"b", 1, true},
		{"B) drink", 1, true},
		{"drink", 1, true},
		{"DRANK", 2, true},
		{"Z", 0, false},
		{"swim", 0, false},
		{"", 0, false},
		{"  C  ", 2, true},
	}

	for _, tt := range tests {
		idx, ok := MatchOption(options, tt.input)
		if ok != tt.wantOK || (ok && idx != tt.wantIdx) {
			t.Errorf("MatchOption(%q) = (%d, %v), want (%d, %v)", tt.input, idx, ok, tt.wantIdx, tt.wantOK)
		}
	}
}

func TestCheckOpenAnswer(t *testing.T) {
	tests := []struct {
		expected string
		input    string
		want     bool
	}{
		{"went", "went", true},
		{"went", "  Went. ", true},
		{"went", "went?", true},
		{"I don't know", "i don't know", true},
		{"went", "goed", false},
		{"good morning", "Good Morning!", true},
	}

	for _, tt := range tests {
		if got := CheckOpenAnswer(tt.expected, tt.input); got != tt.want {
			t.Errorf("CheckOpenAnswer(%q, %q) = %v, want %v", tt.expected, tt.input, got, tt.want)
		}
	}
}

func TestScoreToCEFR(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{0, 10, "A1"},
		{1, 10, "A1"},
		{2, 10, "A2"},
		{3, 10, "A2"},
		{4, 10, "B1"},
		{5, 10, "B1"},
		{6, 10, "B2"},
		{7, 10, "B2"},
		{8, 10, "C1"},
		{9, 10, "C2"},
		{10, 10, "C2"},
		{0, 0, "A1"},
	}

	for _, tt := range tests {
		if got := ScoreToCEFR(tt.score, tt.total); got != tt.want {
			t.Errorf("ScoreToCEFR(%d, %d) = %s, want %s", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestTally(t *testing.T) {
	tally := NewTally()
	tally.Record(content.Question{Tag: "grammar:articles"}, false)
	tally.Record(content.Question{Tag: "grammar:articles"}, false)
	tally.Record(content.Question{Tag: "vocab:frequency"}, false)
	tally.Record(content.Question{Tag: "grammar:past-simple"}, true)
	tally.Record(content.Question{}, false)

	if tally.Score != 1 || tally.Total != 5 {
		t.Fatalf("score %d/%d, want 1/5", tally.Score, tally.Total)
	}

	weak := tally.TopWeaknesses(2)
	if len(weak) != 2 || weak[0] != "grammar:articles" {
		t.Fatalf("TopWeaknesses = %v, want grammar:articles first", weak)
	}
}

func TestTally_TiesBreakAlphabetically(t *testing.T) {
	tally := NewTally()
	tally.Record(content.Question{Tag: "vocab:food"}, false)
	tally.Record(content.Question{Tag: "grammar:articles"}, false)

	weak := tally.TopWeaknesses(5)
	if len(weak) != 2 || weak[0] != "grammar:articles" || weak[1] != "vocab:food" {
		t.Fatalf("TopWeaknesses = %v", weak)
	}
}

func TestTally_MissingTagFallsBackToGeneral(t *testing.T) {
	tally := NewTally()
	tally.Record(content.Question{}, false)

	weak := tally.TopWeaknesses(1)
	if len(weak) != 1 || weak[0] != "general" {
		t.Fatalf("TopWeaknesses = %v, want [general]", weak)
	}
}
