package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// NoteQuery is the parsed form of a timeline search string. A query is
// either a calendar-day lookup or a free-text match, never both.
type NoteQuery struct {
	Date *time.Time
	Text string
}

// Dates accepted as dd/mm/yyyy or dd.mm.yyyy.
var dateQueryRegex = regexp.MustCompile(`^(\d{2})[./](\d{2})[./](\d{4})$`)

// ParseNoteQuery classifies a raw search string. Date-shaped input that
// does not name a real calendar day falls back to text search.
func ParseNoteQuery(query string) NoteQuery {
	query = strings.TrimSpace(query)
	m := dateQueryRegex.FindStringSubmatch(query)
	if m == nil {
		return NoteQuery{Text: query}
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return NoteQuery{Text: query}
	}
	return NoteQuery{Date: &d}
}

// MatchesText reports whether a title/content pair matches a free-text
// query, case-insensitively.
func MatchesText(query, title, content string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(title), q) ||
		strings.Contains(strings.ToLower(content), q)
}
