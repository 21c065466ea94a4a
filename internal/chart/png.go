package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	palette "github.com/listenupapp/catalog-insights/internal/color"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1200
	DefaultHeight = 720
)

const (
	dpi              = 96
	maxCategoryTicks = 12
	maxCellLabels    = 400
	maxLabelRunes    = 34
	rampSteps        = 64
	barFill          = 0.8
	// Share of the canvas the data area takes along each axis, used to size bars.
	dataShareX = 0.8
	dataShareY = 0.7
)

//nolint:gochecknoglobals // Static layout and palette
var (
	noteStrip   = vg.Points(22)
	notePad     = vg.Points(6)
	minBarWidth = vg.Points(1)
	textColor   = palette.TV
	lightText   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	emptyColor  = color.RGBA{}
)

// PNGRenderer draws specs to PNG files with gonum/plot. It is safe for
// concurrent use.
type PNGRenderer struct {
	width  int
	height int
}

// NewPNGRenderer creates a renderer; non-positive sizes fall back to the defaults.
func NewPNGRenderer(width, height int) *PNGRenderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &PNGRenderer{width: width, height: height}
}

// Render draws spec and writes it to path. The parent directory must exist.
// An empty spec writes nothing.
func (r *PNGRenderer) Render(spec Spec, path string) error {
	if spec.Empty() {
		return nil
	}

	c, err := r.paint(spec)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart file: %w", err)
	}
	return nil
}

// Draw paints spec onto a new image of the renderer's size.
func (r *PNGRenderer) Draw(spec Spec) (image.Image, error) {
	c, err := r.paint(spec)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

func (r *PNGRenderer) paint(spec Spec) (*vgimg.Canvas, error) {
	c := vgimg.NewWith(
		vgimg.UseImage(image.NewRGBA(image.Rect(0, 0, r.width, r.height))),
		vgimg.UseDPI(dpi),
	)
	w, h := c.Size()

	p, err := newPlot(spec, w, h-noteStrip)
	if err != nil {
		return nil, fmt.Errorf("build %s chart: %w", spec.Kind, err)
	}

	dc := draw.New(c)
	dc.SetColor(palette.Background)
	dc.Fill(dc.Rectangle.Path())
	drawNote(dc, spec.Note)
	p.Draw(draw.Crop(dc, 0, 0, noteStrip, 0))
	return c, nil
}

func newPlot(spec Spec, w, h vg.Length) (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = palette.Background
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.Title.TextStyle.Color = textColor
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Color = textColor
		ax.Label.TextStyle.Color = textColor
		ax.Tick.Label.Color = textColor
	}
	p.Legend.Top = true
	p.Legend.TextStyle.Color = textColor

	if spec.Empty() {
		p.HideAxes()
		return p, nil
	}

	n := len(spec.Categories)
	var err error
	switch spec.Kind {
	case KindBarH, KindStackedBarH:
		stacked := spec.Kind == KindStackedBarH
		p.Add(valueGrid(true))
		err = addBars(p, spec, true, stacked, h*dataShareY/vg.Length(n))
		p.NominalY(clipAll(spec.Categories)...)
		p.X.Min = 0
		p.X.Max = niceMax(spec.Max(stacked))
	case KindColumns:
		stacked := len(spec.Series) > 1
		p.Add(valueGrid(false))
		err = addBars(p, spec, false, stacked, w*dataShareX/vg.Length(n))
		p.X.Tick.Marker = categoryTicks(spec.Categories)
		p.Y.Min = 0
		p.Y.Max = niceMax(spec.Max(stacked))
	case KindLines:
		p.Add(valueGrid(false))
		err = addLines(p, spec)
		p.X.Tick.Marker = categoryTicks(spec.Categories)
		p.Y.Min = 0
		p.Y.Max = niceMax(spec.Max(false))
	case KindHeatmap:
		err = addHeatmap(p, spec)
	case KindDonut:
		addDonut(p, spec)
	default:
		err = fmt.Errorf("unknown chart kind %q", spec.Kind)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// valueGrid draws grid lines across the value axis only.
func valueGrid(horizontalBars bool) *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = palette.Grid
	g.Horizontal.Color = palette.Grid
	if horizontalBars {
		g.Horizontal.Color = nil
	} else {
		g.Vertical.Color = nil
	}
	return g
}

// addBars adds one bar chart per series. Grouped bars share the category band
// side by side; stacked bars are chained so each starts where the previous ends.
func addBars(p *plot.Plot, spec Spec, horizontal, stacked bool, band vg.Length) error {
	k := len(spec.Series)
	width := band * barFill
	if !stacked {
		width /= vg.Length(k)
	}
	width = max(width, minBarWidth)

	var below *plotter.BarChart
	for j, s := range spec.Series {
		b, err := plotter.NewBarChart(values(spec, s), width)
		if err != nil {
			return err
		}
		b.Color = seriesColor(s)
		b.LineStyle.Width = 0
		b.Horizontal = horizontal
		if stacked {
			if below != nil {
				b.StackOn(below)
			}
			below = b
		} else {
			b.Offset = (vg.Length(j) - vg.Length(k-1)/2) * width
		}
		p.Add(b)
		if k > 1 {
			p.Legend.Add(s.Name, b)
		}
	}
	return nil
}

func addLines(p *plot.Plot, spec Spec) error {
	for _, s := range spec.Series {
		xys := make(plotter.XYs, len(spec.Categories))
		for i := range xys {
			xys[i] = plotter.XY{X: float64(i), Y: finite(s.value(i))}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		l.Color = seriesColor(s)
		l.Width = vg.Points(2)
		p.Add(l)
		if len(spec.Series) > 1 {
			p.Legend.Add(s.Name, l)
		}
	}
	return nil
}

// heatGrid exposes a Spec as a grid: series are columns, categories are rows
// with the first category on top.
type heatGrid struct {
	spec Spec
}

func (g heatGrid) Dims() (c, r int)   { return len(g.spec.Series), len(g.spec.Categories) }
func (g heatGrid) Z(c, r int) float64 { return g.spec.Series[c].value(len(g.spec.Categories) - 1 - r) }
func (g heatGrid) X(c int) float64    { return float64(c) }
func (g heatGrid) Y(r int) float64    { return float64(r) }

// ramp is the heatmap palette, sampled from palette.Ramp.
type ramp int

func (n ramp) Colors() []color.Color {
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = palette.Ramp(float64(i) / float64(n-1))
	}
	return cs
}

func addHeatmap(p *plot.Plot, spec Spec) error {
	grid := heatGrid{spec: spec}
	maxV := spec.Max(false)
	if maxV <= 0 {
		maxV = 1
	}
	hm := plotter.NewHeatMap(grid, ramp(rampSteps))
	hm.Min = 0
	hm.Max = maxV
	p.Add(hm)

	cols, rows := grid.Dims()
	if cols*rows <= maxCellLabels {
		xys := make(plotter.XYs, 0, cols*rows)
		labels := make([]string, 0, cols*rows)
		dark := make([]bool, 0, cols*rows)
		for c := range cols {
			for r := range rows {
				v := grid.Z(c, r)
				xys = append(xys, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
				labels = append(labels, formatValue(v))
				dark = append(dark, v/maxV > 0.6)
			}
		}
		lb, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return err
		}
		for i := range lb.TextStyle {
			lb.TextStyle[i].XAlign = draw.XCenter
			lb.TextStyle[i].YAlign = draw.YCenter
			lb.TextStyle[i].Font.Size = vg.Points(8)
			lb.TextStyle[i].Color = textColor
			if dark[i] {
				lb.TextStyle[i].Color = lightText
			}
		}
		p.Add(lb)
	}

	names := make([]string, cols)
	for c, s := range spec.Series {
		names[c] = s.Name
	}
	p.NominalX(clipAll(names)...)
	rowNames := make([]string, rows)
	for r := range rows {
		rowNames[r] = spec.Categories[rows-1-r]
	}
	p.NominalY(clipAll(rowNames)...)
	return nil
}

// donut draws shares as a ring starting at twelve o'clock and turning clockwise.
type donut struct {
	shares []float64
	colors []color.Color
}

func (d donut) Plot(c draw.Canvas, _ *plot.Plot) {
	width, height := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	center := vg.Point{X: c.Min.X + width*0.35, Y: c.Min.Y + height/2}
	outer := min(width*0.6, height) / 2 * 0.9
	inner := outer * 0.55

	start := math.Pi / 2
	for i, f := range d.shares {
		if f <= 0 {
			continue
		}
		sweep := -2 * math.Pi * f
		end := start + sweep

		var path vg.Path
		path.Arc(center, outer, start, sweep)
		path.Line(vg.Point{
			X: center.X + inner*vg.Length(math.Cos(end)),
			Y: center.Y + inner*vg.Length(math.Sin(end)),
		})
		path.Arc(center, inner, end, -sweep)
		path.Close()
		c.SetColor(d.colors[i])
		c.Fill(path)
		start = end
	}
}

// swatch is a solid legend thumbnail.
type swatch struct {
	color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(s.Color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	})
}

// addDonut draws the first series as a ring with a percentage legend. A series
// with no positive total draws nothing.
func addDonut(p *plot.Plot, spec Spec) {
	p.HideAxes()
	s := spec.Series[0]
	total := 0.0
	for i := range spec.Categories {
		total += max(0, s.value(i))
	}
	if total <= 0 {
		return
	}

	d := donut{
		shares: make([]float64, len(spec.Categories)),
		colors: make([]color.Color, len(spec.Categories)),
	}
	for i, cat := range spec.Categories {
		d.shares[i] = max(0, s.value(i)) / total
		d.colors[i] = palette.ForLabel(cat)
		p.Legend.Add(fmt.Sprintf("%s  %.1f%%", clip(cat, maxLabelRunes), 100*d.shares[i]), swatch{d.colors[i]})
	}
	p.Add(d)
}

func drawNote(dc draw.Canvas, note string) {
	if note == "" {
		note = SourceNote
	}
	sty := draw.TextStyle{
		Color:   textColor,
		Font:    font.From(plot.DefaultFont, vg.Points(9)),
		XAlign:  draw.XRight,
		YAlign:  draw.YBottom,
		Handler: plot.DefaultTextHandler,
	}
	dc.FillText(sty, vg.Point{X: dc.Max.X - notePad, Y: dc.Min.Y + notePad}, note)
}

// categoryTicks labels every category position, leaving labels blank between
// steps once there are too many to read.
func categoryTicks(names []string) plot.ConstantTicks {
	step := max(1, (len(names)+maxCategoryTicks-1)/maxCategoryTicks)
	ticks := make(plot.ConstantTicks, len(names))
	for i, name := range names {
		ticks[i] = plot.Tick{Value: float64(i)}
		if i%step == 0 {
			ticks[i].Label = clip(name, maxLabelRunes)
		}
	}
	return ticks
}

func values(spec Spec, s Series) plotter.Values {
	vs := make(plotter.Values, len(spec.Categories))
	for i := range vs {
		vs[i] = finite(s.value(i))
	}
	return vs
}

// finite maps NaN and infinities to zero; gonum plotters reject them.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func seriesColor(s Series) color.RGBA {
	if s.Color == emptyColor {
		return palette.ForLabel(s.Name)
	}
	return s.Color
}

// niceMax rounds v up to 1, 2, 2.5 or 5 times a power of ten.
func niceMax(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 2.5, 5} {
		if m*exp >= v {
			return m * exp
		}
	}
	return 10 * exp
}

// formatValue prints integers without decimals and anything else with two.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
