package ui

import "time"

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Overlay sizing
const (
	// MinPanelWidth and MinPanelHeight keep degenerate panel configs visible
	MinPanelWidth  float32 = 48
	MinPanelHeight float32 = 27
)

// Decoration defaults
const (
	// DefaultShadowAlpha is the backdrop opacity used when a shadow style
	// carries no explicit color
	DefaultShadowAlpha uint8 = 60

	// DefaultShadowOffset is the backdrop displacement used when a shadow
	// style carries no explicit offset
	DefaultShadowOffset float32 = 4
)

// Simulated environment values used by the demo host
const (
	// DemoKeyboardHeight matches a landscape phone software keyboard
	DemoKeyboardHeight float32 = 216

	// DemoKeyboardSlide is the keyboard appearance animation length
	DemoKeyboardSlide = 250 * time.Millisecond
)
