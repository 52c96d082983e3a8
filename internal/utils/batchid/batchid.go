package batchid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Batch identifiers look like SR0007NOV24: category prefix, four-digit
// sequence, three-letter month, two-digit year. The sequence restarts per
// prefix based on whatever identifiers already exist; the generator is
// advisory only and uniqueness is enforced at insert time.

// MonthSuffix returns the month/year suffix for a batch identifier,
// e.g. NOV24 for November 2024.
func MonthSuffix(t time.Time) string {
	return strings.ToUpper(t.Format("Jan")) + t.Format("06")
}

// Format assembles a batch identifier from its parts.
func Format(prefix string, seq int, t time.Time) string {
	return fmt.Sprintf("%s%04d%s", prefix, seq, MonthSuffix(t))
}

// NextSameMonth derives the next sequence number from the highest existing
// identifier of the current month. A malformed numeric segment resets the
// counter to 1 rather than failing.
func NextSameMonth(latest, prefix, suffix string) int {
	numPart := strings.ReplaceAll(latest, suffix, "")
	numPart = strings.ReplaceAll(numPart, prefix, "")
	n, err := strconv.Atoi(numPart)
	if err != nil {
		return 1
	}
	return n + 1
}

// NextAnyMonth derives the next sequence number from the highest existing
// identifier with the prefix, regardless of month: it takes the leading
// digit run after the prefix and increments it. Malformed input resets to 1.
func NextAnyMonth(latest, prefix string) int {
	rest := latest
	if len(latest) >= len(prefix) {
		rest = latest[len(prefix):]
	}
	var numPart strings.Builder
	for _, ch := range rest {
		if ch < '0' || ch > '9' {
			break
		}
		numPart.WriteRune(ch)
	}
	n, err := strconv.Atoi(numPart.String())
	if err != nil {
		return 1
	}
	return n + 1
}
