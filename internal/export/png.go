package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/piwi3910/tilecanvas/internal/engine"
	"github.com/piwi3910/tilecanvas/internal/model"
	"github.com/piwi3910/tilecanvas/internal/render"
)

var (
	pngBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	pngStroke     = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	pngFill       = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
)

// pngLineWidth is the stroke width in canvas px.
const pngLineWidth = 1.0

// PNGSurface rasterizes drawing commands into an RGBA image at one pixel
// per canvas px.
type PNGSurface struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

var _ render.Surface = (*PNGSurface)(nil)

func NewPNGSurface(canvasW, canvasH float64) *PNGSurface {
	w := int(math.Ceil(canvasW))
	h := int(math.Ceil(canvasH))
	return &PNGSurface{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

// Image returns the rendered image.
func (s *PNGSurface) Image() *image.RGBA { return s.img }

func (s *PNGSurface) Clear(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(s.img, r, image.NewUniform(pngBackground), image.Point{}, draw.Src)
}

// StrokeRect fills the ring between the outer and inner outline. The inner
// path runs the opposite way so its winding cancels the outer one.
func (s *PNGSurface) StrokeRect(x, y, w, h float64) {
	half := pngLineWidth / 2
	s.begin()
	s.rectPath(x-half, y-half, w+pngLineWidth, h+pngLineWidth, false)
	if w > pngLineWidth && h > pngLineWidth {
		s.rectPath(x+half, y+half, w-pngLineWidth, h-pngLineWidth, true)
	}
	s.paint(pngStroke)
}

func (s *PNGSurface) FillRect(x, y, w, h float64) {
	s.begin()
	s.rectPath(x, y, w, h, false)
	s.paint(pngFill)
}

func (s *PNGSurface) Arc(cx, cy, r, start, end float64, ccw bool) {
	sweep := end - start
	if ccw {
		sweep = start - end
	}
	if render.IsFullCircle(start, end) {
		sweep = render.FullTurn
	} else {
		for sweep < 0 {
			sweep += render.FullTurn
		}
	}
	dir := 1.0
	if ccw {
		dir = -1.0
	}

	segments := int(math.Max(16, math.Ceil(r*sweep/4)))
	outer := r + pngLineWidth/2
	inner := math.Max(0, r-pngLineWidth/2)

	s.begin()
	for i := 0; i <= segments; i++ {
		a := start + dir*sweep*float64(i)/float64(segments)
		s.point(i == 0, cx+outer*math.Cos(a), cy+outer*math.Sin(a))
	}
	for i := segments; i >= 0; i-- {
		a := start + dir*sweep*float64(i)/float64(segments)
		s.point(false, cx+inner*math.Cos(a), cy+inner*math.Sin(a))
	}
	s.z.ClosePath()
	s.paint(pngStroke)
}

func (s *PNGSurface) begin() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
}

func (s *PNGSurface) point(first bool, x, y float64) {
	if first {
		s.z.MoveTo(float32(x), float32(y))
		return
	}
	s.z.LineTo(float32(x), float32(y))
}

func (s *PNGSurface) rectPath(x, y, w, h float64, reverse bool) {
	pts := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	for i, p := range pts {
		s.point(i == 0, p[0], p[1])
	}
	s.z.ClosePath()
}

func (s *PNGSurface) paint(c color.Color) {
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}

// ExportPNG renders the scene and its tile cells as a PNG image.
func ExportPNG(w io.Writer, shapes []model.Shape, plan engine.Plan, settings model.Settings) error {
	if len(shapes) == 0 {
		return ErrNothingToExport
	}

	surface := NewPNGSurface(settings.CanvasWidth, settings.CanvasHeight)
	render.DrawAll(surface, shapes, plan, settings)

	if err := png.Encode(w, surface.Image()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// ExportPNGFile is ExportPNG writing to a file at path.
func ExportPNGFile(path string, shapes []model.Shape, plan engine.Plan, settings model.Settings) error {
	if len(shapes) == 0 {
		return ErrNothingToExport
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ExportPNG(f, shapes, plan, settings); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
