package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

//nolint:gochecknoglobals // Compiled once, read-only
var (
	minutesWord    = regexp.MustCompile(`\bmin\b`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*min`)
	seasonsPattern = regexp.MustCompile(`(\d+)\s*season`)
	spaceRuns      = regexp.MustCompile(`\s+`)
)

//nolint:gochecknoglobals // Static lookup tables for type normalization
var (
	movieSpellings  = map[string]bool{"movie": true, "movies": true, "pelicula": true, "película": true, "peliculas": true, "películas": true}
	tvShowSpellings = map[string]bool{"tv show": true, "tv shows": true, "serie": true, "series": true}
)

// dateLayouts are tried in order by ParseDateAdded.
//
//nolint:gochecknoglobals // Static list of accepted layouts
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2 January 2006",
	"2006-01-02T15:04:05Z07:00",
}

// NormalizeType maps spelling variants to Movie or TV Show.
// "movie", "Película" -> "Movie"; "tv-show", "Series" -> "TV Show".
// Anything else is returned trimmed and otherwise unchanged.
func NormalizeType(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	switch {
	case movieSpellings[s]:
		return TypeMovie
	case tvShowSpellings[s]:
		return TypeTVShow
	default:
		return strings.TrimSpace(raw)
	}
}

// Duration is the parsed form of the free-text duration column.
// Movies carry minutes ("90 min"), shows carry seasons ("2 Seasons").
type Duration struct {
	Minutes    int
	Seasons    int
	HasMinutes bool
	HasSeasons bool
}

// ParseDuration extracts minutes or seasons. Unparseable values yield a zero Duration.
func ParseDuration(raw string) Duration {
	var d Duration
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return d
	}

	if minutesWord.MatchString(s) {
		if m := minutesPattern.FindStringSubmatch(s); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				d.Minutes, d.HasMinutes = n, true
			}
		}
	}
	if strings.Contains(s, "season") {
		if m := seasonsPattern.FindStringSubmatch(s); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				d.Seasons, d.HasSeasons = n, true
			}
		}
	}
	return d
}

// ParseDateAdded parses the date_added column. The second return is false when
// the value is empty or matches none of the accepted layouts.
func ParseDateAdded(raw string) (time.Time, bool) {
	s := spaceRuns.ReplaceAllString(strings.TrimSpace(raw), " ")
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseReleaseYear parses integer years, accepting float renderings such as "2019.0".
func ParseReleaseYear(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
