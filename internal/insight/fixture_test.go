package insight

import (
	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/normalize"
)

func fixtureTable() *catalog.Table {
	return catalog.NewTable(catalog.KnownColumns(), []catalog.Record{
		{
			ShowID: "s1", Type: "Movie", Title: "Dick Johnson Is Dead",
			Director: "Ann Lee", Cast: "Bob, Cara", Country: "United States, usa",
			DateAdded: "September 25, 2021", ReleaseYear: "2020", Rating: "PG-13",
			Duration: "90 min", ListedIn: "Dramas, Comedies", Description: "A great journey of friends",
		},
		{
			ShowID: "s2", Type: "TV Show", Title: "Blood & Water",
			Cast: "Bob", Country: "India",
			DateAdded: "January 5, 2020", ReleaseYear: "2020", Rating: "tv ma",
			Duration: "2 Seasons", ListedIn: "TV Dramas", Description: "Great friends reunite",
		},
		{
			ShowID: "s3", Type: "Movie", Title: "Dead Man",
			Director: "Ann Lee, Dan Ko", Cast: "Cara", Country: "Spain",
			DateAdded: "bogus", ReleaseYear: "2019", Rating: "NR",
			Duration: "120 min",
		},
		{
			ShowID: "s4", Type: "movie", Title: "Water Dead",
			Director: "Dan Ko", Country: "France",
			DateAdded: "March 1, 2021", ReleaseYear: "2019.0",
			ListedIn: "Horror Movies", Description: "journey",
		},
	})
}

func fixtureAnalyzer() *Analyzer {
	return NewAnalyzer(normalize.New(nil), Options{TopN: 3})
}
