package helpdesk

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yanqian/campus-helpdesk/internal/domain/college"
)

// academicFilter is what the query asked the calendar for.
type academicFilter struct {
	semester string
	year     string
	event    EventType
}

func parseAcademicFilter(t string) academicFilter {
	var f academicFilter
	f.semester, _ = detectSemester(t)
	f.year, _ = detectYear(t)
	f.event, _ = detectEventType(t)
	return f
}

func (f academicFilter) empty() bool {
	return f.semester == "" && f.year == "" && f.event == ""
}

// keep applies the semester filter, else the year filter, each narrowed by
// event type; with neither, the event type alone decides.
func (f academicFilter) keep(ev college.AcademicEvent) bool {
	switch {
	case f.semester != "":
		if !sameNumber(ev.Semester.String(), f.semester) {
			return false
		}
	case f.year != "":
		if !sameNumber(ev.Year.String(), f.year) {
			return false
		}
	case f.event == "":
		return false
	}
	if f.event == "" {
		return true
	}
	stored, ok := detectEventType(Normalize(ev.Event.String()))
	return ok && stored == f.event
}

// academics never lists the whole calendar: a query has to carry at least
// one filter or an academic keyword, and even then only filtered events
// are shown.
func (h *Helpdesk) academics(t string) Result {
	filter := parseAcademicFilter(t)
	if filter.empty() && !academicGuardKeywords.match(t) {
		return notFound(IntentAcademics, msgNoAcademicQuery)
	}

	var matches []college.AcademicEvent
	for _, ev := range h.catalog.Events() {
		if filter.keep(ev) {
			matches = append(matches, ev)
		}
	}

	if len(matches) == 0 {
		switch {
		case filter.semester != "":
			return notFound(IntentAcademics, fmt.Sprintf(msgNoEventsSemester, filter.semester))
		case filter.year != "":
			return notFound(IntentAcademics, fmt.Sprintf(msgNoEventsYear, filter.year))
		default:
			return notFound(IntentAcademics, msgNoEvents)
		}
	}
	return found(IntentAcademics, renderCalendar(matches))
}

type termKey struct {
	year     string
	semester string
}

func (k termKey) String() string {
	return fmt.Sprintf("Year %s — Semester %s", k.year, k.semester)
}

// renderCalendar groups events by (year, semester), orders groups
// numerically and keeps stored order inside a group.
func renderCalendar(events []college.AcademicEvent) string {
	var order []termKey
	groups := make(map[termKey][]college.AcademicEvent)
	for _, ev := range events {
		key := termKey{
			year:     strings.TrimSpace(ev.Year.String()),
			semester: strings.TrimSpace(ev.Semester.String()),
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], ev)
	}
	sort.SliceStable(order, func(i, j int) bool {
		yi, yj := sortableNumber(order[i].year), sortableNumber(order[j].year)
		if yi != yj {
			return yi < yj
		}
		return sortableNumber(order[i].semester) < sortableNumber(order[j].semester)
	})

	var lines []string
	for _, key := range order {
		lines = append(lines, "📘 "+key.String())
		for _, ev := range groups[key] {
			lines = append(lines, fmt.Sprintf("• %s: %s", ev.Event, ev.Dates))
		}
	}
	return strings.Join(lines, "\n")
}
