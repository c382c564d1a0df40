package model

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Insets represents fixed distances from the four edges of a rectangle
type Insets struct {
	Top    float32
	Left   float32
	Bottom float32
	Right  float32
}

// NewUniformInsets returns insets with the same distance on all four edges
func NewUniformInsets(inset float32) Insets {
	return Insets{Top: inset, Left: inset, Bottom: inset, Right: inset}
}

// IsZero returns true if all four insets are zero
func (in Insets) IsZero() bool {
	return in.Top == 0 && in.Left == 0 && in.Bottom == 0 && in.Right == 0
}

// Add returns the edge-wise sum of two insets
func (in Insets) Add(other Insets) Insets {
	return Insets{
		Top:    in.Top + other.Top,
		Left:   in.Left + other.Left,
		Bottom: in.Bottom + other.Bottom,
		Right:  in.Right + other.Right,
	}
}

// Frame represents a rectangle placed inside a container
type Frame struct {
	Position fyne.Position
	Size     fyne.Size
}

// NewFrame creates a frame from origin coordinates and dimensions
func NewFrame(x, y, width, height float32) Frame {
	return Frame{
		Position: fyne.NewPos(x, y),
		Size:     fyne.NewSize(width, height),
	}
}

// Center returns the center point of the frame
func (f Frame) Center() fyne.Position {
	return fyne.NewPos(f.Position.X+f.Size.Width/2, f.Position.Y+f.Size.Height/2)
}

// WithCenter returns a frame of the same size centered on the given point
func (f Frame) WithCenter(center fyne.Position) Frame {
	return Frame{
		Position: fyne.NewPos(center.X-f.Size.Width/2, center.Y-f.Size.Height/2),
		Size:     f.Size,
	}
}

// String returns a compact representation for logging
func (f Frame) String() string {
	return fmt.Sprintf("(%.1f,%.1f %gx%g)", f.Position.X, f.Position.Y, f.Size.Width, f.Size.Height)
}

// Obstruction is a transient snapshot of the regions the layout engine must
// avoid: the software keyboard occlusion and the container's safe-area
// insets. It is updated by environment signals and read on every layout pass.
type Obstruction struct {
	// KeyboardHeight is the height of the on-screen keyboard overlapping the
	// container bottom, zero when the keyboard is hidden
	KeyboardHeight float32

	// SafeArea holds the container's current safe-area insets
	SafeArea Insets
}
