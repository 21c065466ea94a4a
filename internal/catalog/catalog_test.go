package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
)

const sampleCSV = "\ufeffshow_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description,extra\n" +
	`s1,Movie,Dick Johnson Is Dead,Kirsten Johnson,,United States,"September 25, 2021",2020,PG-13,90 min,Documentaries,"As her father nears the end of his life, filmmaker Kirsten Johnson stages his death.",x` + "\n" +
	`s2,TV Show,Blood & Water,,"Ama Qamata, Khosi Ngema",South Africa,"September 24, 2021",2021,TV-MA,2 Seasons,"International TV Shows, TV Dramas, TV Mysteries","After crossing paths at a party, a Cape Town teen sets out.",y` + "\n" +
	`s3,Movie,Short Row` + "\n"

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Equal(t, 3, table.Len())
	assert.Equal(t, "show_id", table.Columns[0], "BOM should be stripped from first header")
	assert.True(t, table.Has("extra"))

	first := table.Records[0]
	assert.Equal(t, "Dick Johnson Is Dead", first.Title)
	assert.Equal(t, "September 25, 2021", first.DateAdded)
	assert.Equal(t, "", first.Cast)

	second := table.Records[1]
	assert.Equal(t, "Ama Qamata, Khosi Ngema", second.Cast)
	assert.Equal(t, "International TV Shows, TV Dramas, TV Mysteries", second.ListedIn)

	short := table.Records[2]
	assert.Equal(t, "Short Row", short.Title)
	assert.Equal(t, "", short.Country)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestReadCSV_HeaderCaseInsensitive(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(" Type ,COUNTRY\nMovie,France\n"))
	require.NoError(t, err)

	assert.True(t, table.Has("type"))
	assert.Equal(t, "France", table.Records[0].Country)
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	table, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	_, err = LoadCSV(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
}

func TestTable_Require(t *testing.T) {
	table := NewTable([]string{"Type", "country"}, nil)

	require.NoError(t, table.Require("type", "country"))

	err := table.Require("country", "rating", "type", "cast")
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrMissingColumn))

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))
	assert.Equal(t, []string{"rating", "cast"}, domainErr.Details)
}

func TestKnownColumns_ReturnsCopy(t *testing.T) {
	cols := KnownColumns()
	require.Len(t, cols, 12)
	assert.Equal(t, ColShowID, cols[0])
	assert.Equal(t, ColDescription, cols[11])

	cols[0] = "mutated"
	assert.Equal(t, ColShowID, KnownColumns()[0])
}

func TestTable_Filter(t *testing.T) {
	table := NewTable(KnownColumns(), []Record{{Type: "Movie"}, {Type: "TV Show"}, {Type: "movie"}})

	movies := table.Filter(func(r Record) bool { return r.MediaType() == TypeMovie })

	assert.Equal(t, 2, movies.Len())
	assert.Equal(t, 3, table.Len(), "source table must be untouched")
}

func TestRecord_Field(t *testing.T) {
	r := Record{Country: "Spain, France", Rating: "TV-MA", ListedIn: "Dramas"}

	assert.Equal(t, "Spain, France", r.Field(ColCountry))
	assert.Equal(t, "TV-MA", r.Field(ColRating))
	assert.Equal(t, "Dramas", r.Field(ColListedIn))
	assert.Equal(t, "", r.Field("nope"))
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Movie", TypeMovie},
		{"  movie ", TypeMovie},
		{"Película", TypeMovie},
		{"TV Show", TypeTVShow},
		{"tv-show", TypeTVShow},
		{"TV  Shows", TypeTVShow},
		{"Serie", TypeTVShow},
		{" Documentary ", "Documentary"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeType(tt.input))
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected Duration
	}{
		{"90 min", Duration{Minutes: 90, HasMinutes: true}},
		{"  125 MIN ", Duration{Minutes: 125, HasMinutes: true}},
		{"1 Season", Duration{Seasons: 1, HasSeasons: true}},
		{"3 Seasons", Duration{Seasons: 3, HasSeasons: true}},
		{"minutes: 90", Duration{}},
		{"", Duration{}},
		{"unknown", Duration{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDuration(tt.input))
		})
	}
}

func TestParseDateAdded(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		year  int
		month time.Month
	}{
		{"September 25, 2021", true, 2021, time.September},
		{" August 4, 2017", true, 2017, time.August},
		{"Sep 5, 2019", true, 2019, time.September},
		{"2020-01-15", true, 2020, time.January},
		{"not a date", false, 0, 0},
		{"", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDateAdded(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.year, got.Year())
				assert.Equal(t, tt.month, got.Month())
			}
		})
	}
}

func TestParseReleaseYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"2020", 2020, true},
		{" 1999 ", 1999, true},
		{"2019.0", 2019, true},
		{"2019.5", 0, false},
		{"NaN", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseReleaseYear(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
