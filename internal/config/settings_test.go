package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/pip-overlay/internal/model"
	"github.com/ytget/pip-overlay/internal/panel"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDefaultDock(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetDefaultDock() != DefaultDock {
		t.Errorf("Expected default dock %s, got %s", DefaultDock, settings.GetDefaultDock())
	}

	// Test setting custom value
	settings.SetDefaultDock(model.DockTopLeft)
	if settings.GetDefaultDock() != model.DockTopLeft {
		t.Errorf("Expected dock %s, got %s", model.DockTopLeft, settings.GetDefaultDock())
	}

	// Garbage stored values fall back to the default
	app.Preferences().SetString(KeyDefaultDock, "CenterStage")
	if settings.GetDefaultDock() != DefaultDock {
		t.Errorf("Invalid stored dock should fall back to %s, got %s", DefaultDock, settings.GetDefaultDock())
	}
}

func TestEdgeInset(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetEdgeInset() != float32(DefaultEdgeInset) {
		t.Errorf("Expected default edge inset %v, got %v", DefaultEdgeInset, settings.GetEdgeInset())
	}

	settings.SetEdgeInset(24)
	if settings.GetEdgeInset() != 24 {
		t.Errorf("Expected edge inset 24, got %v", settings.GetEdgeInset())
	}

	// Test boundary values
	settings.SetEdgeInset(-5) // Should be clamped to 0
	if settings.GetEdgeInset() != 0 {
		t.Error("Edge inset should be clamped to minimum 0")
	}

	settings.SetEdgeInset(500) // Should be clamped to MaxEdgeInset
	if settings.GetEdgeInset() != float32(MaxEdgeInset) {
		t.Errorf("Edge inset should be clamped to %v, got %v", MaxEdgeInset, settings.GetEdgeInset())
	}
}

func TestRespectSafeArea(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRespectSafeArea() != DefaultRespectSafeArea {
		t.Errorf("Expected default safe-area opt-in %v", DefaultRespectSafeArea)
	}

	settings.SetRespectSafeArea(false)
	if settings.GetRespectSafeArea() {
		t.Error("Safe-area opt-in should be false after SetRespectSafeArea(false)")
	}
}

func TestDurations(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMoveDuration() != panel.DefaultMoveDuration {
		t.Errorf("Expected default move duration %v, got %v", panel.DefaultMoveDuration, settings.GetMoveDuration())
	}

	settings.SetMoveDuration(400 * time.Millisecond)
	if settings.GetMoveDuration() != 400*time.Millisecond {
		t.Errorf("Expected move duration 400ms, got %v", settings.GetMoveDuration())
	}

	// Out-of-range stored values fall back to the default
	app.Preferences().SetInt(KeyMoveDurationMS, 100000)
	if settings.GetMoveDuration() != panel.DefaultMoveDuration {
		t.Errorf("Out-of-range duration should fall back to %v, got %v", panel.DefaultMoveDuration, settings.GetMoveDuration())
	}

	// Stored durations above the clamp are written clamped
	settings.SetSnapDuration(time.Minute)
	if settings.GetSnapDuration() != MaxDurationMS*time.Millisecond {
		t.Errorf("Expected snap duration clamped to %dms, got %v", MaxDurationMS, settings.GetSnapDuration())
	}
}

func TestOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetFadeDuration(100 * time.Millisecond)
	settings.SetMoveDuration(200 * time.Millisecond)
	settings.SetSnapDuration(300 * time.Millisecond)

	opts := settings.Options()
	if opts.FadeDuration != 100*time.Millisecond {
		t.Errorf("Options fade duration = %v, expected 100ms", opts.FadeDuration)
	}
	if opts.MoveDuration != 200*time.Millisecond {
		t.Errorf("Options move duration = %v, expected 200ms", opts.MoveDuration)
	}
	if opts.SnapDuration != 300*time.Millisecond {
		t.Errorf("Options snap duration = %v, expected 300ms", opts.SnapDuration)
	}
}
