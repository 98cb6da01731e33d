package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/helioviewer/sunviewer/internal/events"
	"github.com/helioviewer/sunviewer/internal/model"
	"github.com/helioviewer/sunviewer/internal/provider"
	"github.com/helioviewer/sunviewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "org.helioviewer.sunviewer"
	AppName = "SunViewer"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	fmt.Printf("SunViewer v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSolarTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Layer notifications are prepared off the UI goroutine and handed back with fyne.Do
	bus := events.NewLocalBus()
	layerSvc := provider.NewService(bus, provider.DefaultPrepareDelay)
	layerSvc.SetDispatcher(fyne.Do)

	root := ui.NewRootUI(myWindow, myApp, bus, layerSvc)
	myWindow.SetOnClosed(root.Close)

	// Default view: one EIT image layer and the event markers
	if _, err := layerSvc.AddTileLayer(model.InstrumentEIT, model.Wavelength171, provider.DefaultOpacity); err != nil {
		log.Printf("failed to add default layer: %v", err)
	}
	if _, err := layerSvc.AddMarkerLayer(); err != nil {
		log.Printf("failed to add event layer: %v", err)
	}

	myWindow.ShowAndRun()
}
