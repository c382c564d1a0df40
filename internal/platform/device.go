package platform

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/pip-overlay/internal/model"
)

// Orientation classifies a container as landscape or portrait
type Orientation string

const (
	// OrientationLandscape means the container is wider than tall
	OrientationLandscape Orientation = "Landscape"

	// OrientationPortrait means the container is taller than wide (or
	// square)
	OrientationPortrait Orientation = "Portrait"
)

// String returns the string representation of Orientation
func (o Orientation) String() string {
	return string(o)
}

// OrientationOf classifies a container size. Square containers count as
// portrait so a flip is only reported when the aspect actually inverts.
func OrientationOf(size fyne.Size) Orientation {
	if size.Width > size.Height {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// IsMobileDevice checks if the app is running on a mobile device
func IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if the device reports a landscape orientation
func IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// IsPortrait returns true if the device reports a portrait orientation
func IsPortrait() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}

// SafeAreaInsets derives safe-area insets from the distance between the
// canvas bounds and its interactive area. On desktop drivers the interactive
// area covers the whole canvas and the insets come back zero.
func SafeAreaInsets(c fyne.Canvas) model.Insets {
	if c == nil {
		return model.Insets{}
	}
	pos, size := c.InteractiveArea()
	full := c.Size()

	insets := model.Insets{
		Top:    pos.Y,
		Left:   pos.X,
		Bottom: full.Height - pos.Y - size.Height,
		Right:  full.Width - pos.X - size.Width,
	}
	if insets.Top < 0 || insets.Left < 0 || insets.Bottom < 0 || insets.Right < 0 {
		return model.Insets{}
	}
	return insets
}
