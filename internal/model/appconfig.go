package model

// AppConfig holds application-wide preferences and default settings.
// Environment keys are derived from the field names, e.g. CellSize reads
// TILECANVAS_CELL_SIZE.
type AppConfig struct {
	// Defaults applied to each new session
	CellSize     int          `json:"default_cell_size" split_words:"true"`
	Pitch        int          `json:"default_pitch" split_words:"true"`
	CanvasWidth  float64      `json:"default_canvas_width" split_words:"true"`
	CanvasHeight float64      `json:"default_canvas_height" split_words:"true"`
	CirclePolicy CirclePolicy `json:"circle_policy" split_words:"true"`
	CenterMode   string       `json:"center_mode" split_words:"true"` // "legacy" or "midpoint"

	// Application preferences
	Theme     string `json:"theme" split_words:"true"`      // "light", "dark", "system"
	LogLevel  string `json:"log_level" split_words:"true"`  // "debug", "info", "warn", "error"
	ExportDir string `json:"export_dir" split_words:"true"` // Last directory used for exports
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		CellSize:     defaults.CellSize,
		Pitch:        defaults.Pitch,
		CanvasWidth:  defaults.CanvasWidth,
		CanvasHeight: defaults.CanvasHeight,
		CirclePolicy: defaults.CirclePolicy,
		CenterMode:   defaults.CenterMode.String(),
		Theme:        "system",
		LogLevel:     "info",
	}
}

// ApplyToSettings copies the default values from AppConfig into a Settings struct.
// An unknown center mode is an error and leaves the existing mode untouched.
func (c AppConfig) ApplyToSettings(s *Settings) error {
	s.CellSize = c.CellSize
	s.Pitch = c.Pitch
	s.CanvasWidth = c.CanvasWidth
	s.CanvasHeight = c.CanvasHeight
	s.CirclePolicy = c.CirclePolicy
	return s.CenterMode.UnmarshalText([]byte(c.CenterMode))
}
