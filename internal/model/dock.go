package model

// DockPosition represents the panel's anchored corner or edge in PIP mode
type DockPosition string

const (
	// DockTopLeft anchors the panel to the top-left corner
	DockTopLeft DockPosition = "TopLeft"

	// DockTopRight anchors the panel to the top-right corner
	DockTopRight DockPosition = "TopRight"

	// DockMiddleLeft anchors the panel to the upper-middle of the left edge
	DockMiddleLeft DockPosition = "MiddleLeft"

	// DockMiddleRight anchors the panel to the upper-middle of the right edge
	DockMiddleRight DockPosition = "MiddleRight"

	// DockBottomLeft anchors the panel to the bottom-left corner
	DockBottomLeft DockPosition = "BottomLeft"

	// DockBottomRight anchors the panel to the bottom-right corner
	DockBottomRight DockPosition = "BottomRight"
)

// String returns the string representation of DockPosition
func (dp DockPosition) String() string {
	return string(dp)
}

// IsLeft returns true if the position anchors to the left edge
func (dp DockPosition) IsLeft() bool {
	return dp == DockTopLeft || dp == DockMiddleLeft || dp == DockBottomLeft
}

// IsRight returns true if the position anchors to the right edge
func (dp DockPosition) IsRight() bool {
	return dp == DockTopRight || dp == DockMiddleRight || dp == DockBottomRight
}

// IsTop returns true if the position anchors to the top edge
func (dp DockPosition) IsTop() bool {
	return dp == DockTopLeft || dp == DockTopRight
}

// IsMiddle returns true if the position anchors to the vertical middle band
func (dp DockPosition) IsMiddle() bool {
	return dp == DockMiddleLeft || dp == DockMiddleRight
}

// IsBottom returns true if the position anchors to the bottom edge
func (dp DockPosition) IsBottom() bool {
	return dp == DockBottomLeft || dp == DockBottomRight
}

// DockPositions returns all six canonical dock positions
func DockPositions() []DockPosition {
	return []DockPosition{
		DockTopLeft, DockTopRight,
		DockMiddleLeft, DockMiddleRight,
		DockBottomLeft, DockBottomRight,
	}
}
