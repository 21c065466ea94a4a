// Package catalog holds the media catalog table: records as read from the source CSV,
// column validation, and tolerant parsing of typed values (dates, years, durations).
package catalog

import (
	"slices"
	"strings"
)

// Column names recognized in the source table.
const (
	ColShowID      = "show_id"
	ColType        = "type"
	ColTitle       = "title"
	ColDirector    = "director"
	ColCast        = "cast"
	ColCountry     = "country"
	ColDateAdded   = "date_added"
	ColReleaseYear = "release_year"
	ColRating      = "rating"
	ColDuration    = "duration"
	ColListedIn    = "listed_in"
	ColDescription = "description"
)

// Media types after normalization.
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

//nolint:gochecknoglobals // Static column list, exposed through KnownColumns
var knownColumns = []string{
	ColShowID, ColType, ColTitle, ColDirector, ColCast, ColCountry,
	ColDateAdded, ColReleaseYear, ColRating, ColDuration, ColListedIn, ColDescription,
}

// KnownColumns lists every column the catalog maps into Record fields. The
// slice is a copy the caller may modify.
func KnownColumns() []string {
	return slices.Clone(knownColumns)
}

// Record is one row of the source table. Values are kept raw; an empty string
// means the cell was empty or the column was absent.
type Record struct {
	ShowID      string `json:"show_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Cast        string `json:"cast"`
	Country     string `json:"country"`
	DateAdded   string `json:"date_added"`
	ReleaseYear string `json:"release_year"`
	Rating      string `json:"rating"`
	Duration    string `json:"duration"`
	ListedIn    string `json:"listed_in"`
	Description string `json:"description"`
}

// Field returns the raw value for a column name, or "" for unknown columns.
func (r Record) Field(col string) string {
	switch col {
	case ColShowID:
		return r.ShowID
	case ColType:
		return r.Type
	case ColTitle:
		return r.Title
	case ColDirector:
		return r.Director
	case ColCast:
		return r.Cast
	case ColCountry:
		return r.Country
	case ColDateAdded:
		return r.DateAdded
	case ColReleaseYear:
		return r.ReleaseYear
	case ColRating:
		return r.Rating
	case ColDuration:
		return r.Duration
	case ColListedIn:
		return r.ListedIn
	case ColDescription:
		return r.Description
	default:
		return ""
	}
}

// set assigns a raw value by column name. Unknown columns are ignored.
func (r *Record) set(col, value string) {
	switch col {
	case ColShowID:
		r.ShowID = value
	case ColType:
		r.Type = value
	case ColTitle:
		r.Title = value
	case ColDirector:
		r.Director = value
	case ColCast:
		r.Cast = value
	case ColCountry:
		r.Country = value
	case ColDateAdded:
		r.DateAdded = value
	case ColReleaseYear:
		r.ReleaseYear = value
	case ColRating:
		r.Rating = value
	case ColDuration:
		r.Duration = value
	case ColListedIn:
		r.ListedIn = value
	case ColDescription:
		r.Description = value
	}
}

// MediaType returns the normalized type of the record (see NormalizeType).
func (r Record) MediaType() string {
	return NormalizeType(r.Type)
}

// normalizeColumnName lowercases and trims a header cell so " Listed_In" matches listed_in.
func normalizeColumnName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
