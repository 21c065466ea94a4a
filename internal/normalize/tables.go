// Package normalize cleans the categorical text fields of the media catalog: country and
// rating tokens, audience labels, multi-value list fields and English free text.
//
// All lookup data lives in an immutable Tables value built once at startup and bound to a
// Normalizer. Every function here is pure; none of them log or mutate their inputs.
package normalize

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/listenupapp/catalog-insights/internal/genre"
)

// Replacement is one ordered textual substitution.
type Replacement struct {
	Old string
	New string
}

// Tables holds the fixed lookup data used by the normalizers.
// A Tables value is never modified after construction and is safe to share.
type Tables struct {
	countryAliases     map[string]string // lowercased cleaned token -> canonical name
	canonicalCountries []string
	canonicalSet       map[string]struct{}
	ratingSpacing      []Replacement
	ratingAliases      map[string]string
	kidsRatings        map[string]struct{}
	adultRatings       map[string]struct{}
	stopWords          map[string]struct{}
	genreBuckets       map[string]string
}

// defaultCountryAliases maps malformed or alternate spellings to canonical names.
// Keys are written as they look after cleaning; lookups are case-insensitive.
//
//nolint:gochecknoglobals // Static lookup table
var defaultCountryAliases = map[string]string{
	"Usa":                               "United States",
	"U.s.":                              "United States",
	"U.s.a.":                            "United States",
	"Us":                                "United States",
	"United States Of America":          "United States",
	"England":                           "United Kingdom",
	"Uk":                                "United Kingdom",
	"U.k.":                              "United Kingdom",
	"Great Britain":                     "United Kingdom",
	"Britain":                           "United Kingdom",
	"Korea, South":                      "South Korea",
	"Republic Of Korea":                 "South Korea",
	"Korea":                             "South Korea",
	"Viet Nam":                          "Vietnam",
	"Russian Federation":                "Russia",
	"Uae":                               "United Arab Emirates",
	"Iran, Islamic Republic Of":         "Iran",
	"Hong Kong S.a.r.":                  "Hong Kong",
	"Taiwan, Province Of China":         "Taiwan",
	"Macau, Sar China":                  "Macau",
	"Czechia":                           "Czech Republic",
	"Moldova, Republic Of":              "Moldova",
	"Tanzania, United Republic Of":      "Tanzania",
	"Bolivia, Plurinational State Of":   "Bolivia",
	"Venezuela, Bolivarian Republic Of": "Venezuela",
	"Syrian Arab Republic":              "Syria",
	// Spanish spellings
	"Estados Unidos":         "United States",
	"Reino Unido":            "United Kingdom",
	"Corea Del Sur":          "South Korea",
	"Emiratos Arabes Unidos": "United Arab Emirates",
	"Republica Checa":        "Czech Republic",
}

// defaultCanonicalCountries is ordered; fuzzy-match ties resolve to the earliest entry.
//
//nolint:gochecknoglobals // Static lookup table
var defaultCanonicalCountries = []string{
	"United States", "United Kingdom", "India", "Japan", "South Korea", "Canada", "France", "Spain", "Germany",
	"Italy", "Mexico", "Turkey", "Brazil", "Australia", "Argentina", "Colombia", "Chile", "Peru", "Russia",
	"China", "Hong Kong", "Taiwan", "Thailand", "Philippines", "Indonesia", "Malaysia", "Singapore", "Vietnam",
	"United Arab Emirates", "Saudi Arabia", "Egypt", "South Africa", "Nigeria", "Kenya", "Ghana", "Morocco",
	"Netherlands", "Belgium", "Sweden", "Norway", "Denmark", "Finland", "Poland", "Czech Republic", "Austria",
	"Switzerland", "Portugal", "Ireland", "Greece", "Israel", "Iran", "Iraq", "Syria", "Lebanon", "Jordan",
	"New Zealand", "Bangladesh", "Pakistan", "Sri Lanka", "Nepal", "Romania", "Hungary", "Bulgaria", "Serbia",
	"Croatia", "Slovakia", "Slovenia", "Ukraine", "Belarus", "Lithuania", "Latvia", "Estonia", "Iceland",
	"Luxembourg", "Uruguay", "Paraguay", "Bolivia", "Ecuador", "Venezuela", "Guatemala", "Costa Rica",
	"Panama", "El Salvador", "Honduras", "Nicaragua", "Dominican Republic", "Cuba", "Haiti", "Jamaica",
	"Qatar", "Kuwait", "Bahrain", "Oman", "Yemen", "Algeria", "Tunisia", "Libya", "Ethiopia", "Tanzania",
	"Uganda", "Zimbabwe", "Zambia", "Botswana", "Namibia", "Cameroon", "Ivory Coast", "Senegal", "Mali",
	"Armenia", "Azerbaijan", "Georgia", "Kazakhstan", "Uzbekistan", "Kyrgyzstan", "Mongolia",
	"Macau", "Malta", "Cyprus", "Liechtenstein", "Andorra", "Monaco", "San Marino", "Vatican City",
}

// defaultRatingSpacing turns space-separated rating words into hyphenated codes.
// Order matters: the Y7 FV rule must run before the bare Y7 rule, and both before "TV Y".
//
//nolint:gochecknoglobals // Static lookup table
var defaultRatingSpacing = []Replacement{
	{" TV ", " TV-"},
	{" Y7 FV", "-Y7-FV"},
	{" Y7", "-Y7"},
	{"TV MA", "TV-MA"},
	{"TV 14", "TV-14"},
	{"TV PG", "TV-PG"},
	{"TV G", "TV-G"},
	{"TV Y", "TV-Y"},
	{"PG 13", "PG-13"},
	{"NC 17", "NC-17"},
}

// defaultRatingAliases covers variants the spacing rules cannot express.
//
//nolint:gochecknoglobals // Static lookup table
var defaultRatingAliases = map[string]string{
	"UR":        "NR",
	"UNRATED":   "NR",
	"NOT RATED": "NR",
}

//nolint:gochecknoglobals // Static lookup tables
var (
	defaultKidsRatings = []string{
		"G", "TV-Y", "TV-Y7", "TV-Y7-FV", "TV-G", "PG", "TV-PG", "PG-13", "TV-14",
	}
	defaultAdultRatings = []string{"R", "NC-17", "TV-MA"}
)

// defaultStopWords is the English stop-word set plus catalog noise words.
//
//nolint:gochecknoglobals // Static lookup table
var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "when", "while", "for", "to", "from", "of",
	"in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being",
	"this", "that", "these", "those", "it", "its", "they", "them", "their", "there", "here", "you", "your",
	"we", "our", "us", "he", "she", "his", "her", "i", "me", "my",
	"not", "no", "yes", "do", "does", "did", "doing", "done", "can", "could", "should", "would", "may",
	"might", "will", "just", "than", "so", "such", "only", "very", "more", "most", "much", "many",
	"into", "over", "under", "between", "through", "about", "across", "after", "before", "again", "once",
	"also", "all", "any", "both", "each", "few", "other", "some", "own", "same", "too", "up", "down", "out", "off",
	"film", "films", "movie", "movies", "series", "season", "seasons", "episode", "episodes", "show", "shows",
	"netflix",
}

// DefaultTables returns the built-in lookup data.
func DefaultTables() *Tables {
	return buildTables(defaultCountryAliases, defaultCanonicalCountries, defaultRatingAliases,
		defaultStopWords, genre.DefaultBuckets)
}

func buildTables(
	countryAliases map[string]string,
	canonical []string,
	ratingAliases map[string]string,
	stopWords []string,
	buckets map[string]string,
) *Tables {
	t := &Tables{
		countryAliases:     make(map[string]string, len(countryAliases)),
		canonicalCountries: slices.Clone(canonical),
		canonicalSet:       make(map[string]struct{}, len(canonical)),
		ratingSpacing:      slices.Clone(defaultRatingSpacing),
		ratingAliases:      make(map[string]string, len(ratingAliases)),
		kidsRatings:        toSet(defaultKidsRatings),
		adultRatings:       toSet(defaultAdultRatings),
		stopWords:          make(map[string]struct{}, len(stopWords)),
		genreBuckets:       make(map[string]string, len(buckets)),
	}
	for k, v := range countryAliases {
		t.countryAliases[strings.ToLower(k)] = v
	}
	for _, c := range canonical {
		t.canonicalSet[c] = struct{}{}
	}
	for k, v := range ratingAliases {
		t.ratingAliases[strings.ToUpper(k)] = v
	}
	for _, w := range stopWords {
		t.stopWords[strings.ToLower(w)] = struct{}{}
	}
	for k, v := range buckets {
		t.genreBuckets[k] = v
	}
	return t
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// CanonicalCountries returns a copy of the ordered canonical country list.
func (t *Tables) CanonicalCountries() []string {
	return slices.Clone(t.canonicalCountries)
}

// IsStopWord reports whether w (lowercase) is in the stop-word set.
func (t *Tables) IsStopWord(w string) bool {
	_, ok := t.stopWords[w]
	return ok
}

// tablesFile is the YAML layout accepted by LoadTables.
type tablesFile struct {
	CountryAliases     map[string]string `yaml:"country_aliases"`
	CanonicalCountries []string          `yaml:"canonical_countries"`
	RatingAliases      map[string]string `yaml:"rating_aliases"`
	StopWords          []string          `yaml:"stop_words"`
	GenreBuckets       map[string]string `yaml:"genre_buckets"`
}

// LoadTables reads a YAML file of additions and returns the defaults merged with them.
// Aliases and genre buckets override built-in keys; canonical countries and stop words
// are appended. Unknown keys are rejected.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- tables path comes from the user
	if err != nil {
		return nil, fmt.Errorf("read tables file: %w", err)
	}
	return ParseTables(data)
}

// ParseTables merges YAML table additions over the defaults.
func ParseTables(data []byte) (*Tables, error) {
	var file tablesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse tables file: %w", err)
	}

	countryAliases := mergeMaps(defaultCountryAliases, file.CountryAliases)
	ratingAliases := mergeMaps(defaultRatingAliases, file.RatingAliases)
	buckets := mergeMaps(genre.DefaultBuckets, file.GenreBuckets)

	canonical := slices.Clone(defaultCanonicalCountries)
	for _, c := range file.CanonicalCountries {
		c = strings.TrimSpace(c)
		if c != "" && !slices.Contains(canonical, c) {
			canonical = append(canonical, c)
		}
	}

	stopWords := slices.Clone(defaultStopWords)
	stopWords = append(stopWords, file.StopWords...)

	return buildTables(countryAliases, canonical, ratingAliases, stopWords, buckets), nil
}

func mergeMaps(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
