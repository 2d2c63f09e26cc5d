package core

// PlacesFileName is the name Firefox gives its bookmarks and history database.
const PlacesFileName = "places.sqlite"

// TimeLayout is how normalized timestamps are written to the output.
const TimeLayout = "2006-01-02 15:04:05"

// Header is the fixed column order of the exported file.
var Header = []string{
	"url",
	"title",
	"description",
	"rev_host",
	"frecency",
	"last_visited",
	"date_added",
}
