package batchid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthSuffix(t *testing.T) {
	assert.Equal(t, "NOV24", MonthSuffix(time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "JAN25", MonthSuffix(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "MAY26", MonthSuffix(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormat(t *testing.T) {
	nov := time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "SR0007NOV24", Format("SR", 7, nov))
	assert.Equal(t, "SR0001NOV24", Format("SR", 1, nov))
	// Sequences past 9999 widen rather than truncate.
	assert.Equal(t, "SR10001NOV24", Format("SR", 10001, nov))
}

func TestNextSameMonth(t *testing.T) {
	assert.Equal(t, 8, NextSameMonth("SR0007NOV24", "SR", "NOV24"))
	assert.Equal(t, 2, NextSameMonth("SR0001NOV24", "SR", "NOV24"))

	// Malformed segment resets the counter instead of failing.
	assert.Equal(t, 1, NextSameMonth("SRABCDNOV24", "SR", "NOV24"))
	assert.Equal(t, 1, NextSameMonth("SR-NOV24", "SR", "NOV24"))
}

func TestNextAnyMonth(t *testing.T) {
	assert.Equal(t, 8, NextAnyMonth("SR0007OCT24", "SR"))
	assert.Equal(t, 43, NextAnyMonth("SR0042JAN23", "SR"))

	// No leading digit run after the prefix.
	assert.Equal(t, 1, NextAnyMonth("SRNOV24", "SR"))
	assert.Equal(t, 1, NextAnyMonth("SR", "SR"))
}
