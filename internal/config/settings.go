package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/pip-overlay/internal/model"
	"github.com/ytget/pip-overlay/internal/panel"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultDock     = "panel_default_dock"
	KeyEdgeInset       = "panel_edge_inset"
	KeyRespectSafeArea = "panel_respect_safe_area"
	KeyFadeDurationMS  = "panel_fade_duration_ms"
	KeyMoveDurationMS  = "panel_move_duration_ms"
	KeySnapDurationMS  = "panel_snap_duration_ms"
)

// Default values
const (
	DefaultDock            = model.DockBottomRight
	DefaultEdgeInset       = 12.0
	DefaultRespectSafeArea = true
	MinDurationMS          = 0
	MaxDurationMS          = 2000
	MaxEdgeInset           = 64.0
)

// Settings manages panel configuration defaults backed by app preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultDock returns the configured default dock position
func (s *Settings) GetDefaultDock() model.DockPosition {
	stored := model.DockPosition(s.app.Preferences().String(KeyDefaultDock))
	for _, dock := range model.DockPositions() {
		if stored == dock {
			return stored
		}
	}
	s.SetDefaultDock(DefaultDock)
	return DefaultDock
}

// SetDefaultDock sets the default dock position
func (s *Settings) SetDefaultDock(dock model.DockPosition) {
	s.app.Preferences().SetString(KeyDefaultDock, dock.String())
}

// GetEdgeInset returns the default distance kept between the panel and the
// container edges
func (s *Settings) GetEdgeInset() float32 {
	value := s.app.Preferences().FloatWithFallback(KeyEdgeInset, DefaultEdgeInset)
	if value < 0 || value > MaxEdgeInset {
		s.SetEdgeInset(DefaultEdgeInset)
		return DefaultEdgeInset
	}
	return float32(value)
}

// SetEdgeInset sets the default edge inset
func (s *Settings) SetEdgeInset(inset float64) {
	if inset < 0 {
		inset = 0
	}
	if inset > MaxEdgeInset {
		inset = MaxEdgeInset
	}
	s.app.Preferences().SetFloat(KeyEdgeInset, inset)
}

// GetRespectSafeArea returns whether panels inset from the safe area by
// default
func (s *Settings) GetRespectSafeArea() bool {
	return s.app.Preferences().BoolWithFallback(KeyRespectSafeArea, DefaultRespectSafeArea)
}

// SetRespectSafeArea sets the safe-area default
func (s *Settings) SetRespectSafeArea(respect bool) {
	s.app.Preferences().SetBool(KeyRespectSafeArea, respect)
}

// GetFadeDuration returns the show fade-in duration
func (s *Settings) GetFadeDuration() time.Duration {
	return s.duration(KeyFadeDurationMS, panel.DefaultFadeDuration)
}

// SetFadeDuration sets the show fade-in duration
func (s *Settings) SetFadeDuration(d time.Duration) {
	s.setDuration(KeyFadeDurationMS, d)
}

// GetMoveDuration returns the mode-switch animation duration
func (s *Settings) GetMoveDuration() time.Duration {
	return s.duration(KeyMoveDurationMS, panel.DefaultMoveDuration)
}

// SetMoveDuration sets the mode-switch animation duration
func (s *Settings) SetMoveDuration(d time.Duration) {
	s.setDuration(KeyMoveDurationMS, d)
}

// GetSnapDuration returns the snap-back animation duration
func (s *Settings) GetSnapDuration() time.Duration {
	return s.duration(KeySnapDurationMS, panel.DefaultSnapDuration)
}

// SetSnapDuration sets the snap-back animation duration
func (s *Settings) SetSnapDuration(d time.Duration) {
	s.setDuration(KeySnapDurationMS, d)
}

// Options assembles controller motion options from the stored settings
func (s *Settings) Options() panel.Options {
	return panel.Options{
		FadeDuration: s.GetFadeDuration(),
		MoveDuration: s.GetMoveDuration(),
		SnapDuration: s.GetSnapDuration(),
	}
}

// duration reads a millisecond preference with clamping and fallback
func (s *Settings) duration(key string, fallback time.Duration) time.Duration {
	ms := s.app.Preferences().IntWithFallback(key, int(fallback.Milliseconds()))
	if ms < MinDurationMS || ms > MaxDurationMS {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

// setDuration stores a duration as clamped milliseconds
func (s *Settings) setDuration(key string, d time.Duration) {
	ms := int(d.Milliseconds())
	if ms < MinDurationMS {
		ms = MinDurationMS
	}
	if ms > MaxDurationMS {
		ms = MaxDurationMS
	}
	s.app.Preferences().SetInt(key, ms)
}
