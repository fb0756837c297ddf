package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/videogrid/internal/config"
	"github.com/ytget/videogrid/internal/model"
	"github.com/ytget/videogrid/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.videogrid"
	AppName = "Video Grid"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewVideoTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	videos, err := ui.LoadCatalog(settings)
	if err != nil {
		log.Printf("failed to load catalog %q, using bundled one: %v", settings.GetCatalogPath(), err)
		videos = model.BundledCatalog()
	}

	ui.NewVideoScreen(myApp, myWindow, settings, videos)

	myWindow.ShowAndRun()
}
