package main

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pip-overlay/internal/config"
	"github.com/ytget/pip-overlay/internal/model"
	"github.com/ytget/pip-overlay/internal/panel"
	"github.com/ytget/pip-overlay/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.pip-overlay"
	AppName = "PIP Overlay"

	WindowWidth  = 812
	WindowHeight = 375
)

// demoPanel is a sample overlay panel used by the demo host. It renders a
// numbered card and logs every lifecycle callback.
type demoPanel struct {
	number  int
	content fyne.CanvasObject
	cfg     panel.Config
}

func newDemoPanel(number int, settings *config.Settings) *demoPanel {
	title := widget.NewLabel(fmt.Sprintf("Panel %d", number))
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}

	return &demoPanel{
		number:  number,
		content: container.NewCenter(title),
		cfg: panel.Config{
			Size:            fyne.NewSize(panel.DefaultPIPWidth, panel.DefaultPIPHeight),
			EdgeInsets:      model.NewUniformInsets(settings.GetEdgeInset()),
			RespectSafeArea: settings.GetRespectSafeArea(),
			InitialMode:     model.ModePIP,
			InitialDock:     settings.GetDefaultDock(),
			Corner:          panel.CornerStyle{Radius: 8},
			Shadow:          panel.ShadowStyle{Radius: 4, Offset: fyne.NewPos(0, ui.DefaultShadowOffset)},
		},
	}
}

// Content returns the panel's body
func (p *demoPanel) Content() fyne.CanvasObject { return p.content }

// Config returns the panel's presentation configuration
func (p *demoPanel) Config() panel.Config { return p.cfg }

// Dismiss acknowledges removal and hands control back to the controller
func (p *demoPanel) Dismiss(animated bool, done func()) {
	log.Printf("Panel %d dismissing (animated=%v)", p.number, animated)
	done()
}

// DidChangeState logs presentation mode transitions
func (p *demoPanel) DidChangeState(mode model.Mode) {
	log.Printf("Panel %d entered %s mode", p.number, mode)
}

// DidChangePosition logs snap destinations after a drag
func (p *demoPanel) DidChangePosition(position model.DockPosition) {
	log.Printf("Panel %d docked at %s", p.number, position)
}

func main() {
	// Log version information
	fmt.Printf("PIP Overlay demo v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply overlay theme
	myApp.Settings().SetTheme(ui.NewOverlayTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	host := ui.NewOverlayHost()
	controller := panel.NewController(host, ui.NewFrameAnimator(), settings.Options())

	// Tapping a pip panel expands it to full screen
	host.OnPanelTapped = controller.EnterFullScreenMode

	// Create and setup UI
	myWindow.SetContent(container.NewStack(
		buildBackdrop(controller, host, settings),
		host.Surface(),
	))
	host.BindCanvas(myWindow.Canvas())

	// Show and run
	myWindow.ShowAndRun()
}

// buildBackdrop assembles the demo scene behind the overlay surface:
// a neutral background plus controls driving the panel lifecycle and
// simulated environment changes.
func buildBackdrop(controller *panel.Controller, host *ui.OverlayHost, settings *config.Settings) fyne.CanvasObject {
	background := canvas.NewRectangle(color.NRGBA{R: 28, G: 28, B: 32, A: 255})

	panelCount := 0
	showNext := func() {
		panelCount++
		controller.Show(newDemoPanel(panelCount, settings), nil)
	}

	keyboardVisible := false
	keyboardToggle := widget.NewButton("Show Keyboard", nil)
	keyboardToggle.OnTapped = func() {
		if keyboardVisible {
			host.NotifyKeyboardHidden(ui.DemoKeyboardSlide)
			keyboardToggle.SetText("Show Keyboard")
		} else {
			host.NotifyKeyboardShown(ui.DemoKeyboardHeight, ui.DemoKeyboardSlide)
			keyboardToggle.SetText("Hide Keyboard")
		}
		keyboardVisible = !keyboardVisible
	}

	controls := container.NewVBox(
		widget.NewLabelWithStyle("Panel", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewButton("Show Panel", showNext),
		widget.NewButton("Enter PIP", controller.EnterPIPMode),
		widget.NewButton("Enter Full Screen", controller.EnterFullScreenMode),
		widget.NewButton("Dismiss", func() { controller.Dismiss(true, nil) }),
		widget.NewLabelWithStyle("Environment", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		keyboardToggle,
	)

	return container.NewStack(
		background,
		container.NewHBox(controls),
	)
}
