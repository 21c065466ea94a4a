// Package chart renders the report's static charts to PNG files.
//
// Charts are described by a Spec, a plain value holding categories and numeric
// series, so the analysis code never touches pixels. The PNG renderer builds
// a gonum/plot plot per Spec and rasterizes it with TrueType fonts.
package chart

import "image/color"

// Kind selects how a Spec is drawn.
type Kind string

// Chart kinds.
const (
	// KindBarH draws horizontal bars, one per category, grouped when there are several series.
	KindBarH Kind = "barh"
	// KindStackedBarH stacks every series along one horizontal bar per category.
	KindStackedBarH Kind = "stacked_barh"
	// KindLines draws one polyline per series over the categories.
	KindLines Kind = "lines"
	// KindColumns draws vertical bars; several series are stacked.
	KindColumns Kind = "columns"
	// KindHeatmap draws a grid: categories are rows, series are columns.
	KindHeatmap Kind = "heatmap"
	// KindDonut draws the first series as a ring.
	KindDonut Kind = "donut"
)

// SourceNote is printed in the bottom-right corner of every chart.
const SourceNote = "Fuente: Netflix dataset. Elaboración propia"

// Series is one named run of values aligned with Spec.Categories.
type Series struct {
	Name   string
	Values []float64
	// Color overrides the label-derived color when non-zero.
	Color color.RGBA
}

// Spec describes one chart.
type Spec struct {
	Kind       Kind
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Series     []Series
	// Note defaults to SourceNote.
	Note string
}

// Empty reports whether there is nothing to draw.
func (s Spec) Empty() bool {
	if len(s.Categories) == 0 || len(s.Series) == 0 {
		return true
	}
	for _, ser := range s.Series {
		if len(ser.Values) > 0 {
			return false
		}
	}
	return true
}

// Max returns the largest value across all series, or the largest stacked sum
// when stacked is true.
func (s Spec) Max(stacked bool) float64 {
	maxV := 0.0
	for i := range s.Categories {
		sum := 0.0
		for _, ser := range s.Series {
			v := ser.value(i)
			if stacked {
				sum += v
				continue
			}
			if v > maxV {
				maxV = v
			}
		}
		if stacked && sum > maxV {
			maxV = sum
		}
	}
	return maxV
}

func (s Series) value(i int) float64 {
	if i < 0 || i >= len(s.Values) {
		return 0
	}
	return s.Values[i]
}
