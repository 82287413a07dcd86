package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the published column is hidden.
	LayoutCompactWidth = 72
)

// Books table column widths. Name and author share whatever is left.
const (
	colIDWidth    = 4
	colPagesWidth = 5
	colDateWidth  = 10
	colGap        = 2
)

// Activity view limits.
const (
	// ActivityLines is the number of log lines read for the activity view.
	ActivityLines = 500
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)
