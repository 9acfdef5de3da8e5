package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/tilecanvas/internal/applog"
	"github.com/piwi3910/tilecanvas/internal/export"
	"github.com/piwi3910/tilecanvas/internal/geom"
	"github.com/piwi3910/tilecanvas/internal/model"
	"github.com/piwi3910/tilecanvas/internal/project"
	"github.com/piwi3910/tilecanvas/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window     fyne.Window
	config     model.AppConfig
	configPath string
	session    *Session
	theme      *CanvasTheme

	// UI references for dynamic updates
	canvas  *widgets.DrawCanvas
	kindBtn *ttwidget.Button
	status  *widget.Label
}

// NewApp creates the application UI. configPath is where settings changes
// are saved; an empty path disables saving.
func NewApp(window fyne.Window, config model.AppConfig, settings model.Settings, configPath string) *App {
	return &App{
		window:     window,
		config:     config,
		configPath: configPath,
		session:    NewSession(settings),
		theme:      NewCanvasTheme(config.Theme),
	}
}

// Theme returns the theme selected by the config.
func (a *App) Theme() fyne.Theme { return a.theme }

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	exportItems := make([]*fyne.MenuItem, 0, len(export.Formats))
	for _, f := range export.Formats {
		exportItems = append(exportItems, fyne.NewMenuItem("Export "+formatLabel(f)+"...", func() {
			a.exportAs(f)
		}))
	}

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Clear Canvas", func() {
			a.reset()
		}),
		fyne.NewMenuItemSeparator(),
	)
	fileMenu.Items = append(fileMenu.Items, exportItems...)
	fileMenu.Items = append(fileMenu.Items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Toggle Shape", func() {
			a.toggleKind()
		}),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Tile", func() {
			a.tile()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About TileCanvas",
		"TileCanvas\n\n"+
			"Drag squares and circles onto the canvas, then tile\n"+
			"each square with cells that avoid the circle.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	s := a.session.Settings
	a.canvas = widgets.NewDrawCanvas(s.CanvasWidth, s.CanvasHeight, a.session.Draw)
	a.canvas.OnPress = func(p geom.Point) {
		a.session.Press(p)
	}
	a.canvas.OnMove = func(p geom.Point) {
		if a.session.Move(p) {
			a.canvas.Refresh()
		}
	}
	a.canvas.OnRelease = func(p geom.Point) {
		if !a.session.Dragging() {
			return
		}
		a.session.Release(p)
		a.refresh()
	}

	a.status = widget.NewLabel("")
	a.refresh()

	return container.NewBorder(a.buildToolbar(), a.status, nil, nil, a.canvas)
}

func (a *App) buildToolbar() fyne.CanvasObject {
	a.kindBtn = newButtonWithTooltip(a.session.Kind().String(), theme.ViewRefreshIcon(),
		"Switch between square and circle", a.toggleKind)

	tileBtn := newButtonWithTooltip("Tile", theme.GridIcon(),
		"Fill every square with cells that avoid the circle", a.tile)
	clearBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Clear the canvas", a.reset)
	settingsBtn := newIconButtonWithTooltip(theme.SettingsIcon(), "Tiling settings", a.showSettingsDialog)

	return container.NewHBox(
		widget.NewLabelWithStyle("Shape", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.kindBtn,
		widget.NewSeparator(),
		tileBtn,
		clearBtn,
		layout.NewSpacer(),
		settingsBtn,
	)
}

// HandleKey cancels a drag on Escape and toggles the shape kind on Space.
func (a *App) HandleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		if a.session.Dragging() {
			a.session.Cancel()
			a.canvas.Refresh()
		}
	case fyne.KeySpace:
		a.toggleKind()
	}
}

func (a *App) toggleKind() {
	kind := a.session.ToggleKind()
	if a.kindBtn != nil {
		a.kindBtn.SetText(kind.String())
	}
	a.refresh()
}

func (a *App) tile() {
	if _, err := a.session.Tile(); err != nil {
		dialog.ShowError(err, a.window)
	}
	a.refresh()
}

func (a *App) reset() {
	a.session.Reset()
	a.refresh()
}

func (a *App) refresh() {
	if a.canvas != nil {
		a.canvas.Refresh()
	}
	if a.status != nil {
		a.status.SetText(statusText(a.session))
	}
}

func statusText(s *Session) string {
	shapes := s.Shapes()
	squares := len(model.FilterKind(shapes, model.KindSquare))
	circles := len(model.FilterKind(shapes, model.KindCircle))
	return fmt.Sprintf("Drawing: %s | Squares: %d | Circles: %d | Cells: %d | Cell %d, pitch %d",
		s.Kind(), squares, circles, s.Plan().Count(), s.Settings.CellSize, s.Settings.Pitch)
}

// ─── Settings ──────────────────────────────────────────────

func (a *App) showSettingsDialog() {
	s := a.session.Settings

	cellEntry := widget.NewEntry()
	cellEntry.SetText(strconv.Itoa(s.CellSize))
	pitchEntry := widget.NewEntry()
	pitchEntry.SetText(strconv.Itoa(s.Pitch))

	policySelect := widget.NewSelect([]string{
		string(model.CircleFirst), string(model.CircleLast), string(model.CircleReject),
	}, nil)
	policySelect.SetSelected(string(s.CirclePolicy))

	centerSelect := widget.NewSelect([]string{
		geom.CenterLegacy.String(), geom.CenterMidpoint.String(),
	}, nil)
	centerSelect.SetSelected(s.CenterMode.String())

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, nil)
	themeSelect.SetSelected(a.config.Theme)

	form := dialog.NewForm("Settings", "Apply", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Cell Size", cellEntry),
			widget.NewFormItem("Pitch", pitchEntry),
			widget.NewFormItem("Multiple Circles", policySelect),
			widget.NewFormItem("Circle Center", centerSelect),
			widget.NewFormItem("Theme", themeSelect),
		},
		func(ok bool) {
			if !ok {
				return
			}
			next, err := parseSettings(s, cellEntry.Text, pitchEntry.Text, policySelect.Selected, centerSelect.Selected)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.applySettings(next, themeSelect.Selected)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 320))
	form.Show()
}

// parseSettings builds validated settings from the settings form values.
func parseSettings(base model.Settings, cell, pitch, policy, center string) (model.Settings, error) {
	next := base
	var err error
	if next.CellSize, err = strconv.Atoi(strings.TrimSpace(cell)); err != nil {
		return base, fmt.Errorf("cell size must be a whole number")
	}
	if next.Pitch, err = strconv.Atoi(strings.TrimSpace(pitch)); err != nil {
		return base, fmt.Errorf("pitch must be a whole number")
	}
	next.CirclePolicy = model.CirclePolicy(policy)
	if err := next.CenterMode.UnmarshalText([]byte(center)); err != nil {
		return base, err
	}
	if err := next.Validate(); err != nil {
		return base, err
	}
	return next, nil
}

func (a *App) applySettings(s model.Settings, themeName string) {
	a.session.SetSettings(s)
	a.config.CellSize = s.CellSize
	a.config.Pitch = s.Pitch
	a.config.CirclePolicy = s.CirclePolicy
	a.config.CenterMode = s.CenterMode.String()
	if themeName != a.config.Theme {
		a.config.Theme = themeName
		a.theme.SetName(themeName)
		fyne.CurrentApp().Settings().SetTheme(a.theme)
	}
	a.saveConfig()
	a.refresh()
}

func (a *App) saveConfig() {
	if a.configPath == "" {
		return
	}
	if err := project.SaveAppConfig(a.configPath, a.config); err != nil {
		applog.Logger().Warn("saving config failed", "path", a.configPath, "err", err)
	}
}

// ─── Export ────────────────────────────────────────────────

func formatLabel(f export.Format) string {
	switch f {
	case export.FormatXLSX:
		return "Cell Report (XLSX)"
	default:
		return strings.ToUpper(string(f))
	}
}

func (a *App) exportAs(f export.Format) {
	shapes := a.session.Shapes()
	if len(shapes) == 0 {
		dialog.ShowInformation("Nothing to export", "Draw some shapes first.", a.window)
		return
	}
	if f == export.FormatXLSX && a.session.Plan().Empty() {
		dialog.ShowInformation("No cells", "Run Tile before exporting the cell report.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := a.exportTo(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config.ExportDir = filepath.Dir(path)
		a.saveConfig()
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName("tilecanvas." + string(f))
	if a.config.ExportDir != "" {
		if dir, err := storage.ListerForURI(storage.NewFileURI(a.config.ExportDir)); err == nil {
			d.SetLocation(dir)
		}
	}
	d.Show()
}

func (a *App) exportTo(path string) error {
	err := export.ExportFile(path, a.session.Shapes(), a.session.Plan(), a.session.Settings)
	if err != nil && !errors.Is(err, export.ErrNothingToExport) && !errors.Is(err, export.ErrNoCells) {
		return fmt.Errorf("export %s: %w", filepath.Base(path), err)
	}
	return err
}
