package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	palette "github.com/listenupapp/catalog-insights/internal/color"
)

// containsColor reports whether some pixel is within tol of c on every channel.
func containsColor(img image.Image, c color.RGBA, tol uint8) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if near(color.RGBAModel.Convert(img.At(x, y)).(color.RGBA), c, tol) {
				return true
			}
		}
	}
	return false
}

func near(a, b color.RGBA, tol uint8) bool {
	d := func(x, y uint8) uint8 {
		if x > y {
			return x - y
		}
		return y - x
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol
}

func mustDraw(t *testing.T, r *PNGRenderer, spec Spec) image.Image {
	t.Helper()
	img, err := r.Draw(spec)
	require.NoError(t, err)
	return img
}

func typeSpec(kind Kind) Spec {
	return Spec{
		Kind:       kind,
		Title:      "Títulos por año",
		XLabel:     "Año",
		YLabel:     "Cantidad",
		Categories: []string{"2019", "2020", "2021"},
		Series: []Series{
			{Name: "Movies", Values: []float64{3, 5, 2}, Color: palette.Movie},
			{Name: "TV Shows", Values: []float64{1, 4, 6}, Color: palette.TV},
		},
	}
}

func TestPNGRenderer_DrawKinds(t *testing.T) {
	r := NewPNGRenderer(640, 400)

	for _, kind := range []Kind{KindBarH, KindStackedBarH, KindColumns, KindLines} {
		t.Run(string(kind), func(t *testing.T) {
			img := mustDraw(t, r, typeSpec(kind))

			assert.Equal(t, image.Rect(0, 0, 640, 400), img.Bounds())
			assert.Equal(t, palette.Background, color.RGBAModel.Convert(img.At(2, 2)))
			assert.True(t, containsColor(img, palette.Movie, 16), "movie series drawn")
			assert.True(t, containsColor(img, palette.TV, 16), "tv series drawn")
		})
	}
}

func TestPNGRenderer_Heatmap(t *testing.T) {
	r := NewPNGRenderer(640, 400)
	spec := Spec{
		Kind:       KindHeatmap,
		Categories: []string{"Dramas", "Comedias"},
		Series: []Series{
			{Name: "Ene", Values: []float64{0, 4}},
			{Name: "Feb", Values: []float64{2, 1}},
		},
	}

	img := mustDraw(t, r, spec)

	assert.True(t, containsColor(img, palette.Ramp(1), 0))
	assert.True(t, containsColor(img, palette.Ramp(0), 0))
}

func TestPNGRenderer_Donut(t *testing.T) {
	r := NewPNGRenderer(800, 500)
	spec := Spec{
		Kind:       KindDonut,
		Categories: []string{"TV-MA", "PG-13", "Otros"},
		Series:     []Series{{Name: "Total", Values: []float64{5, 3, 2}}},
	}

	img := mustDraw(t, r, spec)

	for _, cat := range spec.Categories {
		assert.True(t, containsColor(img, palette.ForLabel(cat), 0), cat)
	}
}

func TestPNGRenderer_DonutWithoutTotalDrawsNoRing(t *testing.T) {
	r := NewPNGRenderer(400, 300)
	spec := Spec{
		Kind:       KindDonut,
		Categories: []string{"TV-MA"},
		Series:     []Series{{Name: "Total", Values: []float64{0}}},
	}

	img := mustDraw(t, r, spec)

	assert.False(t, containsColor(img, palette.ForLabel("TV-MA"), 0))
}

func TestPNGRenderer_Render(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	r := NewPNGRenderer(0, 0)

	require.NoError(t, r.Render(typeSpec(KindColumns), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())
}

func TestPNGRenderer_RenderEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	err := NewPNGRenderer(0, 0).Render(Spec{Kind: KindBarH, Title: "nada"}, path)

	require.NoError(t, err)
	assert.NoFileExists(t, path)
}

func TestPNGRenderer_RenderMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chart.png")

	err := NewPNGRenderer(0, 0).Render(typeSpec(KindBarH), path)

	assert.Error(t, err)
}

func TestPNGRenderer_UnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	spec := typeSpec(Kind("pie3d"))

	err := NewPNGRenderer(0, 0).Render(spec, path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pie3d")
	assert.NoFileExists(t, path)
}

func TestPNGRenderer_ManyCategories(t *testing.T) {
	cats := make([]string, 60)
	vals := make([]float64, 60)
	for i := range cats {
		cats[i] = fmt.Sprintf("Categoría con un nombre bastante largo número %d", i)
		vals[i] = float64(i % 7)
	}
	r := NewPNGRenderer(800, 600)

	for _, kind := range []Kind{KindBarH, KindColumns, KindLines, KindHeatmap} {
		t.Run(string(kind), func(t *testing.T) {
			spec := Spec{Kind: kind, Categories: cats, Series: []Series{{Name: "Total", Values: vals, Color: palette.Movie}}}
			img := mustDraw(t, r, spec)
			assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())
		})
	}
}

func TestPNGRenderer_NonFiniteValuesDrawAsZero(t *testing.T) {
	spec := typeSpec(KindLines)
	spec.Series[0].Values = []float64{math.NaN(), math.Inf(1), 2}

	for _, kind := range []Kind{KindLines, KindBarH, KindColumns} {
		spec.Kind = kind
		_, err := NewPNGRenderer(320, 200).Draw(spec)
		assert.NoError(t, err, kind)
	}
}

func TestCategoryTicks(t *testing.T) {
	few := categoryTicks([]string{"a", "b", "c"})
	require.Len(t, few, 3)
	for i, tick := range few {
		assert.InDelta(t, float64(i), tick.Value, 1e-9)
		assert.NotEmpty(t, tick.Label)
	}

	names := make([]string, 30)
	for i := range names {
		names[i] = strconv.Itoa(2000 + i)
	}
	many := categoryTicks(names)
	require.Len(t, many, 30)
	assert.Equal(t, "2000", many[0].Label)
	assert.Empty(t, many[1].Label)
	assert.Empty(t, many[2].Label)
	assert.Equal(t, "2003", many[3].Label)
}

func TestSpec_EmptyAndMax(t *testing.T) {
	assert.True(t, Spec{}.Empty())
	assert.True(t, Spec{Categories: []string{"a"}, Series: []Series{{Name: "x"}}}.Empty())

	spec := typeSpec(KindColumns)
	assert.False(t, spec.Empty())
	assert.InDelta(t, 6.0, spec.Max(false), 1e-9)
	assert.InDelta(t, 10.0, spec.Max(true), 1e-9)
}

func TestNiceMax(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{3, 5},
		{7, 10},
		{120, 200},
		{0.5, 0.5},
		{0.9, 1},
		{2.2, 2.5},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, niceMax(tt.in), 1e-9, "niceMax(%v)", tt.in)
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, "Spain", clip("Spain", 10))
	assert.Equal(t, "United Ki…", clip("United Kingdom", 10))
	assert.Equal(t, "Perú", clip("Perú", 4))
	assert.Equal(t, "Elaboraci…", clip("Elaboración propia", 10))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "0", formatValue(0))
	assert.Equal(t, "0.25", formatValue(0.25))
	assert.Equal(t, "1.33", formatValue(4.0/3))
}
