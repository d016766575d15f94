// Package timeline maps dated CV entries onto the two-row curved timeline
// drawn on the CV page.
//
// Dates up to the last bottom-row year sit on the bottom row, which runs left
// to right. Later dates sit on the top row, which runs right to left after the
// curve, so the path reads as one continuous line.
package timeline

import (
	"strconv"
	"strings"
)

type Row string

const (
	RowBottom Row = "bottom"
	RowTop    Row = "top"
)

// arrowLength is how far the path extends past the padding at its end.
const arrowLength = 20

// Position is a point on the path.
type Position struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Row Row     `json:"row"`
}

// Tick marks a year on one of the rows.
type Tick struct {
	Year int `json:"year"`
	Position
}

// Timeline computes geometry for a fixed Config. It holds no mutable state
// and is safe for concurrent use.
type Timeline struct {
	cfg Config

	startX    float64
	endX      float64
	lineWidth float64

	bottomFrom, bottomTo float64
	topFrom, topTo       float64
}

func New(cfg Config) (*Timeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	startX := cfg.Padding
	endX := cfg.SVGWidth - cfg.Padding - cfg.CurveRadius
	return &Timeline{
		cfg:        cfg,
		startX:     startX,
		endX:       endX,
		lineWidth:  endX - startX,
		bottomFrom: float64(cfg.BottomYears[0]),
		bottomTo:   float64(cfg.BottomYears[len(cfg.BottomYears)-1]),
		topFrom:    float64(cfg.TopYears[0]),
		topTo:      float64(cfg.TopYears[len(cfg.TopYears)-1]),
	}, nil
}

// Default returns a Timeline over DefaultConfig.
func Default() *Timeline {
	tl, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return tl
}

func (t *Timeline) Config() Config { return t.cfg }

// YearX returns the x coordinate of year on the given row.
func (t *Timeline) YearX(year float64, row Row) float64 {
	if row == RowBottom {
		progress := (year - t.bottomFrom) / (t.bottomTo - t.bottomFrom)
		return t.startX + progress*t.lineWidth
	}
	progress := (year - t.topFrom) / (t.topTo - t.topFrom)
	return t.endX - progress*t.lineWidth
}

// PathData is the SVG path: bottom row, curve on the right, top row.
func (t *Timeline) PathData() string {
	curveX := t.endX + t.cfg.CurveRadius
	bottom, top := t.cfg.BottomY, t.cfg.TopY

	var b strings.Builder
	b.WriteString("M " + point(t.startX, bottom))
	b.WriteString(" L " + point(t.endX, bottom))
	b.WriteString(" C " + point(curveX, bottom) + " " + point(curveX, top) + " " + point(t.endX, top))
	b.WriteString(" L " + point(t.startX, top))
	return b.String()
}

// PathDataWithArrow extends PathData past the left padding on the top row.
func (t *Timeline) PathDataWithArrow() string {
	return t.PathData() + " L " + point(t.startX-arrowLength, t.cfg.TopY)
}

// PositionForDate places v on the timeline. Invalid dates land on the top
// row with NaN coordinates.
func (t *Timeline) PositionForDate(v DateValue) Position {
	return t.positionForDecimal(Decimal(v))
}

func (t *Timeline) positionForDecimal(decimal float64) Position {
	if decimal <= t.bottomTo {
		return Position{X: t.YearX(decimal, RowBottom), Y: t.cfg.BottomY, Row: RowBottom}
	}
	return Position{X: t.YearX(decimal, RowTop), Y: t.cfg.TopY, Row: RowTop}
}

// Ticks returns one tick per configured year, bottom row first.
func (t *Timeline) Ticks() []Tick {
	ticks := make([]Tick, 0, len(t.cfg.BottomYears)+len(t.cfg.TopYears))
	for _, y := range t.cfg.BottomYears {
		ticks = append(ticks, Tick{
			Year:     y,
			Position: Position{X: t.YearX(float64(y), RowBottom), Y: t.cfg.BottomY, Row: RowBottom},
		})
	}
	for _, y := range t.cfg.TopYears {
		ticks = append(ticks, Tick{
			Year:     y,
			Position: Position{X: t.YearX(float64(y), RowTop), Y: t.cfg.TopY, Row: RowTop},
		})
	}
	return ticks
}

func point(x, y float64) string {
	return formatNumber(x) + "," + formatNumber(y)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
