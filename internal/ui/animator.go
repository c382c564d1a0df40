package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/pip-overlay/internal/model"
)

// FrameAnimator implements panel.Animator with Fyne canvas animations.
// Completion callbacks fire on the Fyne animation driver at the final tick,
// preserving the frame-compute happens-before completion-notification
// ordering. Starting a new animation on the same object re-targets it;
// the last write wins.
type FrameAnimator struct{}

// NewFrameAnimator creates the production animator
func NewFrameAnimator() *FrameAnimator {
	return &FrameAnimator{}
}

// AnimateFrame interpolates obj from its current frame to the target over
// the given duration
func (a *FrameAnimator) AnimateFrame(obj fyne.CanvasObject, to model.Frame, duration time.Duration, done func()) {
	if obj == nil {
		if done != nil {
			done()
		}
		return
	}
	if duration <= 0 {
		obj.Move(to.Position)
		obj.Resize(to.Size)
		if done != nil {
			done()
		}
		return
	}

	from := model.Frame{Position: obj.Position(), Size: obj.Size()}

	anim := fyne.NewAnimation(duration, func(progress float32) {
		obj.Move(lerpPosition(from.Position, to.Position, progress))
		obj.Resize(lerpSize(from.Size, to.Size, progress))
		if progress >= 1 && done != nil {
			done()
			done = nil
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
}

// FadeIn reveals a hidden object and completes after the duration. Generic
// canvas objects carry no opacity, so the reveal is immediate; the duration
// only schedules the completion to keep caller ordering intact.
func (a *FrameAnimator) FadeIn(obj fyne.CanvasObject, duration time.Duration, done func()) {
	if obj == nil {
		if done != nil {
			done()
		}
		return
	}
	obj.Show()
	obj.Refresh()

	if duration <= 0 {
		if done != nil {
			done()
		}
		return
	}

	anim := fyne.NewAnimation(duration, func(progress float32) {
		if progress >= 1 && done != nil {
			done()
			done = nil
		}
	})
	anim.Start()
}

// lerpPosition interpolates between two positions
func lerpPosition(from, to fyne.Position, progress float32) fyne.Position {
	return fyne.NewPos(
		from.X+(to.X-from.X)*progress,
		from.Y+(to.Y-from.Y)*progress,
	)
}

// lerpSize interpolates between two sizes
func lerpSize(from, to fyne.Size, progress float32) fyne.Size {
	return fyne.NewSize(
		from.Width+(to.Width-from.Width)*progress,
		from.Height+(to.Height-from.Height)*progress,
	)
}
