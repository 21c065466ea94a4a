package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCountryToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  france ", "France"},
		{"UNITED   KINGDOM", "United Kingdom"},
		{"México", "Mexico"},
		{"United Kingdom (UK)", "United Kingdom"},
		{"  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanCountryToken(tt.in))
		})
	}
}

func TestCountry(t *testing.T) {
	n := New(nil)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim and case", "  france ", "France"},
		{"alias usa", "usa", "United States"},
		{"alias dotted", "U.S.A.", "United States"},
		{"alias long form", "United States of America", "United States"},
		{"alias uk", "UK", "United Kingdom"},
		{"alias viet nam", "Viet Nam", "Vietnam"},
		{"alias spanish with accent", "República Checa", "Czech Republic"},
		{"accented canonical", "Perú", "Peru"},
		{"fuzzy typo", "Untied States", "United States"},
		{"parenthetical", "Germany (West)", "Germany"},
		{"below threshold unchanged", "Atlantis", "Atlantis"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Country(tt.in))
		})
	}
}

func TestCountry_Idempotent(t *testing.T) {
	n := New(nil)
	inputs := []string{"usa", "Untied States", "Atlantis", "Moldova", "south korea", "Perú"}
	for _, in := range inputs {
		once := n.Country(in)
		assert.Equal(t, once, n.Country(once), in)
	}
	for _, c := range n.Tables().CanonicalCountries() {
		assert.Equal(t, c, n.Country(c))
	}
}

func TestCountries(t *testing.T) {
	n := New(nil)

	assert.Equal(t, []string{"Spain", "France"}, n.Countries("Spain, France"))
	assert.Equal(t, []string{"United States", "United States"}, n.Countries("United States, usa"))
	assert.Equal(t, []string{"India"}, n.Countries("India, , "))
	assert.Empty(t, n.Countries(""))
	assert.Empty(t, n.Countries("   "))
}
