package normalize

import (
	"fmt"

	"github.com/listenupapp/catalog-insights/internal/catalog"
)

// Expanded is one record paired with a single token taken from one of its
// multi-value fields. The record is a copy; the input table is never touched.
type Expanded struct {
	catalog.Record
	Token string `json:"token"`
}

// Splitter turns one field value into zero or more normalized tokens.
type Splitter func(field string) []string

// Explode emits one Expanded per token that split yields for col. Records
// whose field yields no tokens produce no rows.
func Explode(records []catalog.Record, col string, split Splitter) []Expanded {
	out := make([]Expanded, 0, len(records))
	for _, rec := range records {
		for _, tok := range split(rec.Field(col)) {
			out = append(out, Expanded{Record: rec, Token: tok})
		}
	}
	return out
}

// ExplodeCountries fans records out by normalized country.
func (n *Normalizer) ExplodeCountries(records []catalog.Record) []Expanded {
	return Explode(records, catalog.ColCountry, n.Countries)
}

// ExplodeRatings fans records out by normalized rating. Records with a blank
// rating produce nothing.
func (n *Normalizer) ExplodeRatings(records []catalog.Record) []Expanded {
	return Explode(records, catalog.ColRating, n.Ratings)
}

// ExplodeDirectors fans records out by director name.
func (n *Normalizer) ExplodeDirectors(records []catalog.Record) []Expanded {
	return Explode(records, catalog.ColDirector, n.Names)
}

// ExplodeCast fans records out by cast member.
func (n *Normalizer) ExplodeCast(records []catalog.Record) []Expanded {
	return Explode(records, catalog.ColCast, n.Names)
}

// ExplodeGenres fans records out by genre bucket.
func (n *Normalizer) ExplodeGenres(records []catalog.Record) []Expanded {
	return Explode(records, catalog.ColListedIn, n.Genres)
}

// ExplodeTable validates that t carries col and fans it out with the matching
// normalizer. It fails with a missing-column error before producing anything.
func (n *Normalizer) ExplodeTable(t *catalog.Table, col string) ([]Expanded, error) {
	if err := t.Require(col); err != nil {
		return nil, err
	}
	split, err := n.splitterFor(col)
	if err != nil {
		return nil, err
	}
	return Explode(t.Records, col, split), nil
}

func (n *Normalizer) splitterFor(col string) (Splitter, error) {
	switch col {
	case catalog.ColCountry:
		return n.Countries, nil
	case catalog.ColRating:
		return n.Ratings, nil
	case catalog.ColDirector, catalog.ColCast:
		return n.Names, nil
	case catalog.ColListedIn:
		return n.Genres, nil
	default:
		return nil, fmt.Errorf("column %q is not a multi-value field", col)
	}
}
