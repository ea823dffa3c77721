// Package placement scores placement-test answers and maps results to CEFR
// levels and weakness tags.
package placement

import (
	"regexp"
	"sort"
	"strings"

	"github.com/abhisek/lingocoach/internal/content"
)

// MatchOption resolves a learner's reply against a choice list. Accepts a
// leading option letter ("B" or "B) drink") or the full option text.
func MatchOption(options []string, input string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}

	first := strings.ToUpper(input[:1])
	if first >= "A" && first <= "Z" {
		pos := int(first[0] - 'A')
		if pos < len(options) {
			return pos, true
		}
	}

	for i, opt := range options {
		if strings.EqualFold(input, opt) {
			return i, true
		}
	}
	return 0, false
}

var answerJunk = regexp.MustCompile(`[^a-z0-9 ']`)

// normalizeAnswer lowercases and strips punctuation so open answers compare
// on words, not formatting.
func normalizeAnswer(s string) string {
	return answerJunk.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// CheckOpenAnswer compares a free-text reply with the expected answer.
func CheckOpenAnswer(expected, input string) bool {
	return normalizeAnswer(input) == normalizeAnswer(expected)
}

// ScoreToCEFR maps a placement score onto the CEFR scale.
func ScoreToCEFR(score, total int) string {
	if total < 1 {
		total = 1
	}
	pct := float64(score) / float64(total) * 100

	switch {
	case pct < 20:
		return "A1"
	case pct < 40:
		return "A2"
	case pct < 60:
		return "B1"
	case pct < 75:
		return "B2"
	case pct < 90:
		return "C1"
	default:
		return "C2"
	}
}

// Tally accumulates placement answers.
type Tally struct {
	Score     int
	Total     int
	wrongTags map[string]int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{wrongTags: make(map[string]int)}
}

// Record adds one answered question.
func (t *Tally) Record(q content.Question, correct bool) {
	t.Total++
	if correct {
		t.Score++
		return
	}
	tag := q.Tag
	if tag == "" {
		tag = "general"
	}
	t.wrongTags[tag]++
}

// CEFR returns the assessed level for the tally so far.
func (t *Tally) CEFR() string {
	return ScoreToCEFR(t.Score, t.Total)
}

// TopWeaknesses returns the n most-missed tags, most missed first. Ties
// break alphabetically for stable output.
func (t *Tally) TopWeaknesses(n int) []string {
	type tagCount struct {
		tag string
		n   int
	}
	counts := make([]tagCount, 0, len(t.wrongTags))
	for tag, c := range t.wrongTags {
		counts = append(counts, tagCount{tag, c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].tag < counts[j].tag
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	tags := make([]string, len(counts))
	for i, c := range counts {
		tags[i] = c.tag
	}
	return tags
}
