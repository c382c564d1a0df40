package panel

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/pip-overlay/internal/model"
)

// FullFrame returns the frame covering the entire container
func FullFrame(bounds fyne.Size) model.Frame {
	return model.NewFrame(0, 0, bounds.Width, bounds.Height)
}

// PIPFrame computes the canonical docked frame for a panel. It is a pure
// function of the container bounds, the safe-area insets (honored only when
// the panel opts in), the panel's fixed size and edge insets, the current
// dock position, and the current keyboard occlusion height.
func PIPFrame(bounds fyne.Size, safe model.Insets, cfg Config, dock model.DockPosition, keyboardHeight float32) model.Frame {
	cfg = cfg.withDefaults()
	if !cfg.RespectSafeArea {
		safe = model.Insets{}
	}
	edge := cfg.EdgeInsets
	size := cfg.Size

	var x float32
	if dock.IsLeft() {
		x = safe.Left + edge.Left
	} else {
		x = bounds.Width - safe.Right - edge.Right - size.Width
	}

	// Lowest permissible top edge, accounting for keyboard occlusion.
	topY := safe.Top + edge.Top
	limitY := bounds.Height - safe.Bottom - edge.Bottom - size.Height - keyboardHeight

	var y float32
	switch {
	case dock.IsTop():
		y = topY
	case dock.IsBottom():
		y = limitY
	default:
		// Middle docks sit at the boundary between the second and third
		// vertical band, offset by the panel height. This lands visually
		// upper-middle rather than dead center; the placement is
		// intentional and matched by the snap classification bands.
		available := limitY - topY + safe.Top + safe.Bottom
		y = topY + available/3*2 - size.Height
	}

	return model.Frame{
		Position: fyne.NewPos(x, y),
		Size:     size,
	}
}

// ClampCenter restricts a prospective panel center so the panel's edges
// never cross the combined safe-area and edge insets on any side. The lower
// bound additionally subtracts the current keyboard height.
func ClampCenter(center fyne.Position, bounds fyne.Size, safe model.Insets, cfg Config, keyboardHeight float32) fyne.Position {
	cfg = cfg.withDefaults()
	if !cfg.RespectSafeArea {
		safe = model.Insets{}
	}
	edge := cfg.EdgeInsets
	halfW := cfg.Size.Width / 2
	halfH := cfg.Size.Height / 2

	minX := safe.Left + edge.Left + halfW
	maxX := bounds.Width - safe.Right - edge.Right - halfW
	minY := safe.Top + edge.Top + halfH
	maxY := bounds.Height - safe.Bottom - edge.Bottom - keyboardHeight - halfH

	return fyne.NewPos(
		clamp(center.X, minX, maxX),
		clamp(center.Y, minY, maxY),
	)
}

// ClassifyDock maps a panel center to one of the six canonical dock
// positions: thirds of the container height crossed with halves of the
// width.
func ClassifyDock(center fyne.Position, bounds fyne.Size) model.DockPosition {
	left := center.X < bounds.Width/2

	switch {
	case center.Y < bounds.Height/3:
		if left {
			return model.DockTopLeft
		}
		return model.DockTopRight
	case center.Y > bounds.Height/3*2:
		if left {
			return model.DockBottomLeft
		}
		return model.DockBottomRight
	default:
		if left {
			return model.DockMiddleLeft
		}
		return model.DockMiddleRight
	}
}

// clamp restricts v to [min, max]; when the band is inverted (panel larger
// than the available space) the upper bound wins so the panel stays inside
// the obstruction-free region.
func clamp(v, min, max float32) float32 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}
