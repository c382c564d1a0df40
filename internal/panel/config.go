package panel

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/pip-overlay/internal/model"
)

// Default panel geometry
const (
	DefaultPIPWidth  float32 = 160
	DefaultPIPHeight float32 = 90
	DefaultEdgeInset float32 = 12
)

// Default motion timing
const (
	DefaultFadeDuration = 300 * time.Millisecond
	DefaultMoveDuration = 250 * time.Millisecond
	DefaultSnapDuration = 200 * time.Millisecond
)

// ShadowStyle describes an optional drop shadow behind the panel. The zero
// value means no shadow is applied.
type ShadowStyle struct {
	Color  color.Color
	Offset fyne.Position
	Radius float32
}

// IsZero returns true if the style requests no shadow
func (s ShadowStyle) IsZero() bool {
	return s.Color == nil && s.Radius == 0
}

// CornerStyle describes optional corner rounding. The zero value means
// square corners.
type CornerStyle struct {
	Radius float32
}

// Config holds a panel's fixed layout configuration, provided once by the
// panel owner. Zero values fall back to sensible defaults via withDefaults.
type Config struct {
	// Size is the fixed panel size in PIP mode
	Size fyne.Size

	// EdgeInsets are fixed distances kept between the panel and the
	// container edges in PIP mode
	EdgeInsets model.Insets

	// RespectSafeArea additionally insets the panel from the container's
	// safe area
	RespectSafeArea bool

	// InitialMode selects the presentation mode on first show
	InitialMode model.Mode

	// InitialDock selects the dock position on first PIP entry
	InitialDock model.DockPosition

	// Shadow is the optional drop shadow style; zero value applies nothing
	Shadow ShadowStyle

	// Corner is the optional corner rounding style; zero value applies
	// nothing
	Corner CornerStyle
}

// withDefaults fills unset fields with defaults
func (c Config) withDefaults() Config {
	if c.Size.Width <= 0 || c.Size.Height <= 0 {
		c.Size = fyne.NewSize(DefaultPIPWidth, DefaultPIPHeight)
	}
	if c.InitialMode == "" {
		c.InitialMode = model.ModePIP
	}
	if c.InitialDock == "" {
		c.InitialDock = model.DockBottomRight
	}
	return c
}

// Options configures controller-wide motion timing. Zero values fall back to
// the package defaults.
type Options struct {
	// FadeDuration is the fade-in length when a panel is shown
	FadeDuration time.Duration

	// MoveDuration is the animation length for mode switches and
	// environment-driven relayouts
	MoveDuration time.Duration

	// SnapDuration is the animation length for the snap back to a canonical
	// dock frame after a drag
	SnapDuration time.Duration
}

// DefaultOptions returns Options populated with the package defaults
func DefaultOptions() Options {
	return Options{
		FadeDuration: DefaultFadeDuration,
		MoveDuration: DefaultMoveDuration,
		SnapDuration: DefaultSnapDuration,
	}
}

// withDefaults fills unset durations with defaults
func (o Options) withDefaults() Options {
	if o.FadeDuration <= 0 {
		o.FadeDuration = DefaultFadeDuration
	}
	if o.MoveDuration <= 0 {
		o.MoveDuration = DefaultMoveDuration
	}
	if o.SnapDuration <= 0 {
		o.SnapDuration = DefaultSnapDuration
	}
	return o
}
