package color

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	c, err := Hex("#e50914")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xe5, G: 0x09, B: 0x14, A: 0xff}, c)

	c, err = Hex("221f1f")
	require.NoError(t, err)
	assert.Equal(t, "#221F1F", ToHex(c))

	_, err = Hex("#fff")
	assert.Error(t, err)
	_, err = Hex("#zzzzzz")
	assert.Error(t, err)
}

func TestMustHex_Panics(t *testing.T) {
	assert.Panics(t, func() { MustHex("nope") })
}

func TestForLabel(t *testing.T) {
	assert.Equal(t, ForLabel("TV-MA"), ForLabel("TV-MA"))
	assert.NotEqual(t, ForLabel("TV-MA"), ForLabel("PG-13"))
	assert.Equal(t, uint8(0xff), ForLabel("anything").A)
}

func TestRamp(t *testing.T) {
	low, high := Ramp(0), Ramp(1)

	// Darker at the top of the scale.
	assert.Greater(t, int(low.G), int(high.G))
	assert.Equal(t, low, Ramp(-3))
	assert.Equal(t, high, Ramp(7))
}
