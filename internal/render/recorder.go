package render

// Op identifies a recorded drawing operation.
type Op int

const (
	OpClear Op = iota
	OpStrokeRect
	OpFillRect
	OpArc
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpStrokeRect:
		return "stroke-rect"
	case OpFillRect:
		return "fill-rect"
	case OpArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Command is one recorded drawing call. Rect ops use X, Y, W, H; arcs use
// X, Y as the center plus R, Start, End and CCW.
type Command struct {
	Op         Op
	X, Y, W, H float64
	R          float64
	Start, End float64
	CCW        bool
}

// Recorder is a Surface that keeps the commands it receives. Clear discards
// everything recorded before it.
type Recorder struct {
	Commands []Command
}

var _ Surface = (*Recorder)(nil)

func (rec *Recorder) Clear(x, y, w, h float64) {
	rec.Commands = nil
	rec.Commands = append(rec.Commands, Command{Op: OpClear, X: x, Y: y, W: w, H: h})
}

func (rec *Recorder) StrokeRect(x, y, w, h float64) {
	rec.Commands = append(rec.Commands, Command{Op: OpStrokeRect, X: x, Y: y, W: w, H: h})
}

func (rec *Recorder) FillRect(x, y, w, h float64) {
	rec.Commands = append(rec.Commands, Command{Op: OpFillRect, X: x, Y: y, W: w, H: h})
}

func (rec *Recorder) Arc(cx, cy, r, start, end float64, ccw bool) {
	rec.Commands = append(rec.Commands, Command{Op: OpArc, X: cx, Y: cy, R: r, Start: start, End: end, CCW: ccw})
}

// Count returns how many commands of the given op were recorded.
func (rec *Recorder) Count(op Op) int {
	n := 0
	for _, c := range rec.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Replay sends the recorded commands to another surface.
func (rec *Recorder) Replay(s Surface) {
	for _, c := range rec.Commands {
		switch c.Op {
		case OpClear:
			s.Clear(c.X, c.Y, c.W, c.H)
		case OpStrokeRect:
			s.StrokeRect(c.X, c.Y, c.W, c.H)
		case OpFillRect:
			s.FillRect(c.X, c.Y, c.W, c.H)
		case OpArc:
			s.Arc(c.X, c.Y, c.R, c.Start, c.End, c.CCW)
		}
	}
}
