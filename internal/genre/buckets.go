// Package genre maps the catalog's listed_in labels to the coarse Spanish-language
// genre buckets used by the seasonality report.
package genre

import "strings"

// DefaultBuckets maps listed_in labels to their bucket. Labels not listed here are
// their own bucket.
//
//nolint:gochecknoglobals // Static lookup table
var DefaultBuckets = map[string]string{
	// Main film/TV genres
	"Comedies":       "Comedia",
	"TV Comedies":    "Comedia",
	"Dramas":         "Drama",
	"TV Dramas":      "Drama",
	"Horror Movies":  "Terror",
	"TV Horror":      "Terror",
	"Thrillers":      "Thriller",
	"TV Thrillers":   "Thriller",
	"Crime TV Shows": "Crimen/Misterio",
	"TV Mysteries":   "Crimen/Misterio",

	"Action & Adventure":    "Acción/Aventura",
	"TV Action & Adventure": "Acción/Aventura",

	"Sci-Fi & Fantasy":    "Ciencia Ficción/Fantasía",
	"TV Sci-Fi & Fantasy": "Ciencia Ficción/Fantasía",

	"Romantic Movies":   "Romance",
	"Romantic TV Shows": "Romance",

	"Documentaries":       "Documental",
	"Docuseries":          "Documental",
	"Science & Nature TV": "Ciencia/Naturaleza",

	"Children & Family Movies": "Infantil/Familiar",
	"Kids' TV":                 "Infantil/Familiar",
	"Teen TV Shows":            "Infantil/Familiar",

	"Anime Features": "Anime",
	"Anime Series":   "Anime",

	"Music & Musicals": "Música",
	"Sports Movies":    "Deportes",
	"Reality TV":       "Reality",

	"Stand-Up Comedy":              "Stand-Up",
	"Stand-Up Comedy & Talk Shows": "Stand-Up",

	// International / regional
	"International Movies":      "Internacional/Regional",
	"International TV Shows":    "Internacional/Regional",
	"British TV Shows":          "Internacional/Regional",
	"Korean TV Shows":           "Internacional/Regional",
	"Spanish-Language TV Shows": "Internacional/Regional",

	"Classic Movies":     "Clásicos/Culto",
	"Cult Movies":        "Clásicos/Culto",
	"Classic & Cult TV":  "Clásicos/Culto",
	"Independent Movies": "Independiente",

	"Faith & Spirituality": "Fe/Espiritualidad",

	"TV Shows": "TV (General)",
}

// Bucket returns the bucket for a listed_in label using the given table.
// Unknown labels pass through trimmed; blank labels return "".
func Bucket(buckets map[string]string, label string) string {
	t := strings.TrimSpace(label)
	if t == "" {
		return ""
	}
	if b, ok := buckets[t]; ok {
		return b
	}
	return t
}
