package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePivot() *Pivot {
	ct := newCrossTab()
	ct.addN("b", "x", 2)
	ct.addN("a", "x", 2)
	ct.addN("c", "y", 5)
	ct.add("a", "y")
	return ct.pivot("sample", "key", []string{"x", "y"}, true)
}

func TestCrossTab_Pivot(t *testing.T) {
	p := samplePivot()

	assert.Equal(t, []string{"x", "y", ColTotal}, p.Columns)
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
	v, ok := p.Value("a", ColTotal)
	assert.True(t, ok)
	assert.InDelta(t, 3.0, v, 1e-9)
	v, _ = p.Value("b", "y")
	assert.InDelta(t, 0.0, v, 1e-9)

	_, ok = p.Value("a", "missing")
	assert.False(t, ok)
	_, ok = p.Value("zzz", "x")
	assert.False(t, ok)
}

func TestPivot_SortDescTiesByKey(t *testing.T) {
	p := samplePivot()
	p.Rows = append(p.Rows, PivotRow{Key: "0", Values: []float64{3, 0, 3}})

	p.SortDesc(ColTotal)

	assert.Equal(t, []string{"c", "0", "a", "b"}, p.Keys())
}

func TestPivot_SliceAndReverseCopy(t *testing.T) {
	p := samplePivot()

	s := p.Slice(1, 10)
	assert.Equal(t, []string{"b", "c"}, s.Keys())
	assert.Equal(t, 0, p.Slice(5, 8).Len())

	r := p.Reversed()
	assert.Equal(t, []string{"c", "b", "a"}, r.Keys())

	r.Rows[0].Values[0] = 99
	v, _ := p.Value("c", "x")
	assert.InDelta(t, 0.0, v, 1e-9, "copies must not alias the source")
}

func TestPivot_NilLen(t *testing.T) {
	var p *Pivot
	assert.Equal(t, 0, p.Len())
}

func TestCounterTop(t *testing.T) {
	c := counter{"b": 2, "a": 2, "c": 1, "d": 3}

	assert.Equal(t, []string{"d", "a", "b"}, c.top(3))
	assert.Equal(t, []string{"d", "a", "b", "c"}, c.top(10))
}
