// Package srs implements SM-2-lite spaced repetition: the interval/ease
// update rule, deterministic item identifiers, and the review lifecycle.
package srs

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

const (
	// DefaultEase is the retention-strength factor for a fresh item.
	DefaultEase = 2.5

	// MinEase is the floor below which ease never drops. Keeps intervals
	// from collapsing after repeated misses.
	MinEase = 1.3

	easeGainOnCorrect = 0.1
	easeLossOnWrong   = 0.2
)

// Next computes the schedule after one answer.
//
// Correct answers raise ease by 0.1 and grow the interval geometrically
// (round(interval * ease)); the first correct answer on a never-reviewed
// item yields a 1-day interval. Wrong answers lower ease by 0.2 and always
// reset the interval to 1 day. Interval growth is unbounded: long-lived
// items graduate naturally by drifting far into the future.
func Next(ease float64, intervalDays int, wasCorrect bool) (float64, int) {
	if wasCorrect {
		ease = math.Max(MinEase, ease+easeGainOnCorrect)
		if intervalDays == 0 {
			return ease, 1
		}
		return ease, int(math.Round(float64(intervalDays) * ease))
	}

	ease = math.Max(MinEase, ease-easeLossOnWrong)
	return ease, 1
}

// ItemID derives a stable identifier from the exercise text. The same text
// always maps to the same id, so re-seeding an exercise is idempotent.
// Distinct exercises hashing to the same id is possible and accepted.
func ItemID(exercise string) string {
	h := fnv.New64a()
	h.Write([]byte(strings.TrimSpace(exercise)))
	return fmt.Sprintf("ex_%x", h.Sum64())
}
