package panel

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/pip-overlay/internal/model"
)

func TestEngine_DragOnlyArmsInPIPMode(t *testing.T) {
	test.NewApp()
	host := newTestHost(812, 375)
	c, _ := showPIPPanel(t, host)
	engine := c.Engine()

	c.EnterFullScreenMode()
	engine.DragBegin()
	if engine.Dragging() {
		t.Error("drag must not arm in full-screen mode")
	}

	c.EnterPIPMode()
	engine.DragBegin()
	if !engine.Dragging() {
		t.Error("drag should arm in PIP mode")
	}
	engine.DragEnd()
}

func TestEngine_DragTracksAndClamps(t *testing.T) {
	test.NewApp()
	host := newTestHost(812, 375)
	c, _ := newTestController(host)
	p := newTestPanel(Config{
		Size:        fyne.NewSize(160, 90),
		InitialMode: model.ModePIP,
		InitialDock: model.DockTopLeft,
	})
	c.Show(p, nil)
	engine := c.Engine()

	// Origin center is (80,45). Move well past the right edge: the center
	// clamps so the panel's right edge stays inside the container.
	engine.DragBegin()
	engine.DragBy(1920, 55)

	center := engine.Frame().Center()
	if center.X > 732 {
		t.Errorf("clamped center.x = %v, must not exceed 732", center.X)
	}
	if center != fyne.NewPos(732, 100) {
		t.Errorf("dragged center = %v, expected (732,100)", center)
	}

	// Deltas accumulate relative to the drag origin, not the last position.
	engine.DragBy(-1952, 0)
	center = engine.Frame().Center()
	if center != fyne.NewPos(80, 100) {
		t.Errorf("center after opposite delta = %v, expected (80,100)", center)
	}
	engine.DragEnd()
}

func TestEngine_ModeSwitchCancelsDrag(t *testing.T) {
	test.NewApp()
	host := newTestHost(812, 375)
	c, p := showPIPPanel(t, host)
	engine := c.Engine()

	engine.DragBegin()
	c.EnterFullScreenMode()

	if engine.Dragging() {
		t.Fatal("entering full screen must cancel the drag in flight")
	}

	// Leftover gesture events from the cancelled drag must not move the
	// full-screen panel or reclassify its dock.
	engine.DragBy(50, 50)
	engine.DragEnd()

	if engine.Frame() != model.NewFrame(0, 0, 812, 375) {
		t.Errorf("full-screen frame = %v, expected container bounds", engine.Frame())
	}
	if len(p.positions) != 0 {
		t.Errorf("no position change should be reported after the cancel, got %v", p.positions)
	}
}

func TestEngine_DragByWithoutBeginIsNoOp(t *testing.T) {
	test.NewApp()
	host := newTestHost(812, 375)
	c, _ := showPIPPanel(t, host)
	engine := c.Engine()

	before := engine.Frame()
	engine.DragBy(100, 100)
	engine.DragEnd()

	if engine.Frame() != before {
		t.Errorf("frame moved without an armed drag: %v -> %v", before, engine.Frame())
	}
}

func TestEngine_SnapOnRelease(t *testing.T) {
	test.NewApp()
	host := newTestHost(812, 375)
	c, p := showPIPPanel(t, host)
	engine := c.Engine()

	// Drag from bottom-right into the bottom-left third and release at a
	// raw, unsnapped position.
	engine.DragBegin()
	engine.DragBy(-600, -10)
	engine.DragEnd()

	if engine.Dock() != model.DockBottomLeft {
		t.Fatalf("dock after release = %s, expected BottomLeft", engine.Dock())
	}
	if len(p.positions) != 1 || p.positions[0] != model.DockBottomLeft {
		t.Errorf("panel should be notified of the new position, got %v", p.positions)
	}

	// The engine must land on the canonical frame for the new dock, not on
	// the raw release position.
	expected := PIPFrame(host.bounds, model.Insets{}, p.cfg, model.DockBottomLeft, 0)
	if engine.Frame() != expected {
		t.Errorf("snapped frame = %v, expected canonical %v", engine.Frame(), expected)
	}
}

func TestEngine_DragClampAvoidsKeyboard(t *testing.T) {
	test.NewApp()
	host := newTestHost(812, 375)
	c, _ := showPIPPanel(t, host)
	engine := c.Engine()

	engine.obstruction.KeyboardHeight = 216

	engine.DragBegin()
	engine.DragBy(0, 500)

	// maxY = 375 - 216 - 45 = 114
	if engine.Frame().Center().Y != 114 {
		t.Errorf("keyboard-clamped center.y = %v, expected 114", engine.Frame().Center().Y)
	}
	engine.DragEnd()
}
