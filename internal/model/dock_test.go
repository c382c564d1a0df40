package model

import "testing"

func TestDockPosition_Sides(t *testing.T) {
	tests := []struct {
		position DockPosition
		left     bool
		top      bool
		middle   bool
		bottom   bool
	}{
		{DockTopLeft, true, true, false, false},
		{DockTopRight, false, true, false, false},
		{DockMiddleLeft, true, false, true, false},
		{DockMiddleRight, false, false, true, false},
		{DockBottomLeft, true, false, false, true},
		{DockBottomRight, false, false, false, true},
	}

	for _, test := range tests {
		if test.position.IsLeft() != test.left {
			t.Errorf("DockPosition(%s).IsLeft() = %v, expected %v", test.position, test.position.IsLeft(), test.left)
		}
		if test.position.IsRight() == test.left {
			t.Errorf("DockPosition(%s).IsRight() should be the opposite of IsLeft()", test.position)
		}
		if test.position.IsTop() != test.top {
			t.Errorf("DockPosition(%s).IsTop() = %v, expected %v", test.position, test.position.IsTop(), test.top)
		}
		if test.position.IsMiddle() != test.middle {
			t.Errorf("DockPosition(%s).IsMiddle() = %v, expected %v", test.position, test.position.IsMiddle(), test.middle)
		}
		if test.position.IsBottom() != test.bottom {
			t.Errorf("DockPosition(%s).IsBottom() = %v, expected %v", test.position, test.position.IsBottom(), test.bottom)
		}
	}
}

func TestDockPositions(t *testing.T) {
	positions := DockPositions()
	if len(positions) != 6 {
		t.Errorf("DockPositions() returned %d positions, expected 6", len(positions))
	}

	seen := make(map[DockPosition]bool)
	for _, pos := range positions {
		if seen[pos] {
			t.Errorf("DockPositions() contains duplicate position %s", pos)
		}
		seen[pos] = true
	}
}
