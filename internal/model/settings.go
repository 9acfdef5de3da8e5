package model

import (
	"fmt"

	"github.com/piwi3910/tilecanvas/internal/geom"
)

// CirclePolicy decides which circle acts as the exclusion mask when the
// scene holds more than one.
type CirclePolicy string

const (
	CircleFirst  CirclePolicy = "first"  // Use the earliest placed circle
	CircleLast   CirclePolicy = "last"   // Use the most recently placed circle
	CircleReject CirclePolicy = "reject" // Refuse to tile with more than one circle
)

// Valid reports whether p is a known policy.
func (p CirclePolicy) Valid() bool {
	switch p {
	case CircleFirst, CircleLast, CircleReject:
		return true
	}
	return false
}

// Settings holds the tiling and canvas configuration.
type Settings struct {
	CellSize     int             `json:"cell_size"`     // Side of each tile cell in canvas px
	Pitch        int             `json:"pitch"`         // Step between cell origins in canvas px
	CanvasWidth  float64         `json:"canvas_width"`  // Logical canvas width in px
	CanvasHeight float64         `json:"canvas_height"` // Logical canvas height in px
	CirclePolicy CirclePolicy    `json:"circle_policy"`
	CenterMode   geom.CenterMode `json:"center_mode"`
}

func DefaultSettings() Settings {
	return Settings{
		CellSize:     10,
		Pitch:        15,
		CanvasWidth:  1200,
		CanvasHeight: 800,
		CirclePolicy: CircleFirst,
		CenterMode:   geom.CenterLegacy,
	}
}

// Validate checks that the settings can drive a tiling pass.
func (s Settings) Validate() error {
	if s.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", s.CellSize)
	}
	if s.Pitch <= 0 {
		return fmt.Errorf("pitch must be positive, got %d", s.Pitch)
	}
	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size must be positive, got %.0fx%.0f", s.CanvasWidth, s.CanvasHeight)
	}
	if !s.CirclePolicy.Valid() {
		return fmt.Errorf("unknown circle policy %q", s.CirclePolicy)
	}
	return nil
}
