package normalize

import "github.com/listenupapp/catalog-insights/internal/genre"

// Names splits a director or cast field into trimmed names.
// Names are not re-cased; blank entries are dropped.
func (n *Normalizer) Names(field string) []string {
	return splitField(field)
}

// Labels splits a listed_in field into its raw trimmed genre labels.
func (n *Normalizer) Labels(field string) []string {
	return splitField(field)
}

// Genres splits a listed_in field and maps every label to its broad bucket.
// Labels without a bucket pass through unchanged.
func (n *Normalizer) Genres(field string) []string {
	labels := splitField(field)
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if b := genre.Bucket(n.tables.genreBuckets, l); b != "" {
			out = append(out, b)
		}
	}
	return out
}
