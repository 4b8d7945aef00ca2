package helpdesk

import (
	"regexp"
	"strconv"
	"strings"
)

// EventType is one of the canonical academic event labels.
type EventType string

const (
	EventSessionalI  EventType = "Sessional I"
	EventSessionalII EventType = "Sessional II"
	EventEndExams    EventType = "End Exams"
)

var (
	routeNumberPattern = regexp.MustCompile(`route\s*([0-9]+[a-z]?)`)
	semesterPattern    = regexp.MustCompile(`\bsem(?:ester)?\s*([1-8])\b`)
)

type yearWord struct {
	token string
	year  string
	re    *regexp.Regexp
}

// Ordinal words come before bare digits: in "sessional 1 3rd year" the
// digit belongs to the event and the year is 3.
var yearWords = buildYearWords([][2]string{
	{"1st", "1"}, {"first", "1"},
	{"2nd", "2"}, {"second", "2"},
	{"3rd", "3"}, {"third", "3"},
	{"4th", "4"}, {"fourth", "4"},
	{"1", "1"}, {"2", "2"}, {"3", "3"}, {"4", "4"},
})

func buildYearWords(pairs [][2]string) []yearWord {
	out := make([]yearWord, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, yearWord{
			token: p[0],
			year:  p[1],
			re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(p[0]) + `\b`),
		})
	}
	return out
}

type eventDetector struct {
	event EventType
	re    *regexp.Regexp
}

// Checked in order, first hit wins. Every alternative is word bounded so
// "sessional ii" is never read as Sessional I.
var eventDetectors = []eventDetector{
	{EventSessionalI, regexp.MustCompile(`\b(?:sessional\s*(?:i|1)|ca\s?i)\b`)},
	{EventSessionalII, regexp.MustCompile(`\b(?:sessional\s*(?:ii|2)|ca\s?ii)\b`)},
	{EventEndExams, regexp.MustCompile(`\b(?:end\s*(?:sem(?:ester)?\s+)?exam(?:s|inations?)?|semester\s+end|see)\b`)},
}

// extractRouteToken returns the raw route number following "route".
func extractRouteToken(text string) (string, bool) {
	m := routeNumberPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func detectSemester(text string) (string, bool) {
	m := semesterPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func detectYear(text string) (string, bool) {
	for _, w := range yearWords {
		if w.re.MatchString(text) {
			return w.year, true
		}
	}
	return "", false
}

func detectEventType(text string) (EventType, bool) {
	for _, d := range eventDetectors {
		if d.re.MatchString(text) {
			return d.event, true
		}
	}
	return "", false
}

// sameNumber compares stored year/semester values regardless of whether
// the document wrote them as numbers or strings.
func sameNumber(stored, want string) bool {
	a, errA := strconv.Atoi(strings.TrimSpace(stored))
	b, errB := strconv.Atoi(strings.TrimSpace(want))
	if errA == nil && errB == nil {
		return a == b
	}
	return strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(want))
}

// sortableNumber maps non-numeric values after every real year/semester.
func sortableNumber(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 99
	}
	return n
}
