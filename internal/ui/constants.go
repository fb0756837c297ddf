package ui

import (
	"image/color"
	"time"
)

// Grid sizing
const (
	PhoneColumns            = 1
	PhoneRowHeight  float32 = 280
	TabletColumns           = 3
	TabletRowHeight float32 = 250
	CompactWidth    float32 = 600
	MinCellWidth    float32 = 120
)

// Icons
const (
	IconSettings = "⚙"
)

// Highlight colors for changed cells; the animation fades to clear
var (
	HighlightColor   = color.NRGBA{R: 25, G: 118, B: 210, A: 96}
	TransparentColor = color.NRGBA{}
)

// Window sizing
const (
	WindowWidth  = 900
	WindowHeight = 700
)

// Delays
const (
	// DefaultHighlight is used when no settings are available.
	DefaultHighlight = 300 * time.Millisecond
)
