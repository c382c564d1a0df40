package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/pip-overlay/internal/config"
	"github.com/ytget/pip-overlay/internal/panel"
	"github.com/ytget/pip-overlay/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.ytget.pip-overlay")
	myApp.Settings().SetTheme(ui.NewOverlayTheme())

	myWindow := myApp.NewWindow("PIP Overlay")
	myWindow.Resize(fyne.NewSize(812, 375))

	// Create and setup overlay system
	settings := config.NewSettings(myApp)
	host := ui.NewOverlayHost()
	controller := panel.NewController(host, ui.NewFrameAnimator(), settings.Options())
	host.OnPanelTapped = controller.EnterFullScreenMode

	myWindow.SetContent(container.NewStack(host.Surface()))
	host.BindCanvas(myWindow.Canvas())

	// Show and run
	myWindow.ShowAndRun()
}
