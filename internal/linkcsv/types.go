// Package linkcsv provides data structures and parsing functionality for the
// falling-links CSV file.
//
// The file is a header-first CSV with at least two named columns:
//
//	link,is_legit
//	https://www.google.com,true
//	http://www.go0gle.com,false
//
// Column order is free and extra columns are ignored.
package linkcsv

import "errors"

// Column names expected in the header row.
const (
	ColumnLink    = "link"
	ColumnIsLegit = "is_legit"
)

var (
	// ErrEmpty is returned when the input has no header row.
	ErrEmpty = errors.New("linkcsv: empty input")
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("linkcsv: missing column")
	// ErrNoLinks is returned by Require when a file parsed fine but has no data rows.
	ErrNoLinks = errors.New("linkcsv: no links")
)

// Link is one row of the CSV: the displayed URL and whether it is legitimate.
type Link struct {
	Text    string
	IsLegit bool
}

// Stats summarizes a parsed link list.
type Stats struct {
	Total    int
	Legit    int
	Phishing int
}

// Summarize counts legitimate and phishing links.
func Summarize(links []Link) Stats {
	stats := Stats{Total: len(links)}
	for _, l := range links {
		if l.IsLegit {
			stats.Legit++
		} else {
			stats.Phishing++
		}
	}
	return stats
}
