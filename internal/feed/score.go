package feed

import (
	"regexp"
	"strconv"
)

// Matches the first "X/10" or "X.Y / 10" style rating in review text.
var scorePattern = regexp.MustCompile(`(\d+(\.\d+)?)\s*/\s*10`)

// ExtractScore returns the first out-of-ten rating found in text, or nil when
// none is present. The value is taken literally; rhetorical ratings like
// "150/10" are not clamped.
func ExtractScore(text string) *float64 {
	match := scorePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	score, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}
	return &score
}
