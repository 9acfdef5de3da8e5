// TileCanvas: interactive shape drawing and tiling
//
// Drag squares and circles onto a canvas, then fill every square with
// fixed-size cells that avoid the circle. The result can be exported as
// PDF, DXF, PNG or an XLSX cell report.
//
// Build:
//   go build -o tilecanvas ./cmd/tilecanvas
//
// Headless export of the demo scene:
//   tilecanvas -export demo.pdf
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/tilecanvas/internal/applog"
	"github.com/piwi3910/tilecanvas/internal/export"
	"github.com/piwi3910/tilecanvas/internal/project"
	"github.com/piwi3910/tilecanvas/internal/ui"
)

func main() {
	configPath := flag.String("config", project.DefaultConfigPath(), "path to the JSON config file")
	exportPath := flag.String("export", "", "render the demo scene to this file and exit")
	flag.Parse()

	if err := run(*configPath, *exportPath); err != nil {
		fmt.Fprintln(os.Stderr, "tilecanvas:", err)
		os.Exit(1)
	}
}

func run(configPath, exportPath string) error {
	config, settings, err := project.Load(configPath)
	if err != nil {
		return err
	}

	level, err := applog.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	applog.SetLogger(applog.NewTextLogger(os.Stderr, level))
	applog.Logger().Info("config loaded", "path", configPath,
		"cell_size", settings.CellSize, "pitch", settings.Pitch, "circle_policy", settings.CirclePolicy)

	if exportPath != "" {
		demo, err := ui.DemoSession(settings)
		if err != nil {
			return err
		}
		return export.ExportFile(exportPath, demo.Shapes(), demo.Plan(), settings)
	}

	application := app.NewWithID("com.piwi3910.tilecanvas")
	window := application.NewWindow("TileCanvas")

	appUI := ui.NewApp(window, config, settings, configPath)
	application.Settings().SetTheme(appUI.Theme())
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Canvas().SetOnTypedKey(appUI.HandleKey)
	window.Resize(fyne.NewSize(1280, 900))
	window.CenterOnScreen()
	window.ShowAndRun()
	return nil
}
