package helpdesk

import (
	"github.com/yanqian/campus-helpdesk/internal/domain/college"
)

// Helpdesk answers free-text questions from a loaded college catalog.
// It holds no mutable state and is safe for concurrent use.
type Helpdesk struct {
	catalog  *college.Catalog
	aliases  AliasTable
	routes   []route
	fallback []fallbackStep
}

// route sends a query to a handler when its keywords appear. Routes are
// tried in slice order and the first hit answers unconditionally.
type route struct {
	intent  Intent
	matches func(text string) bool
	handle  func(text string) Result
}

// fallbackStep is tried only when no route matched. A step runs when its
// guard passes (nil guard always passes) and answers if the result matched.
type fallbackStep struct {
	intent Intent
	guard  func(text string) bool
	handle func(text string) Result
}

// NewHelpdesk builds the dispatcher over catalog. collegeAliases are extra
// words, such as the college's short name, that ask for the about text.
func NewHelpdesk(catalog *college.Catalog, aliases AliasTable, collegeAliases ...string) *Helpdesk {
	h := &Helpdesk{catalog: catalog, aliases: aliases}
	about := aboutKeywords.with(collegeAliases...)

	h.routes = []route{
		{intent: IntentHOD, matches: hodKeywords.match, handle: h.hod},
		{intent: IntentDriver, matches: driverKeywords.match, handle: h.driver},
		{intent: IntentRoute, matches: mentionsTransport, handle: h.route},
		{intent: IntentAcademics, matches: mentionsAcademics, handle: h.academics},
		{intent: IntentContact, matches: contactKeywords.match, handle: h.contact},
		{intent: IntentFacilities, matches: facilityKeywords.match, handle: h.facilities},
		{intent: IntentAbout, matches: about.match, handle: h.about},
	}
	// Academics never answers from the fallback.
	h.fallback = []fallbackStep{
		{intent: IntentHOD, handle: h.hod},
		{intent: IntentDriver, handle: h.driver},
		{intent: IntentRoute, guard: mentionsTransport, handle: h.route},
	}
	return h
}

// Answer normalizes text and dispatches it.
func (h *Helpdesk) Answer(text string) Reply {
	t := Normalize(text)
	if t == "" {
		return Reply{Result: notFound(IntentUsage, msgUsage)}
	}
	for _, r := range h.routes {
		if r.matches(t) {
			return Reply{Result: r.handle(t)}
		}
	}
	for _, step := range h.fallback {
		if step.guard != nil && !step.guard(t) {
			continue
		}
		if res := step.handle(t); res.Matched() {
			return Reply{Result: res, Fallback: true}
		}
	}
	return Reply{Result: notFound(IntentUnknown, msgCannotFind)}
}

// CollegeName is the display name of the loaded college.
func (h *Helpdesk) CollegeName() string {
	return h.catalog.Name()
}

// RouteOrder lists the keyword groups in evaluation order.
func (h *Helpdesk) RouteOrder() []Intent {
	out := make([]Intent, len(h.routes))
	for i, r := range h.routes {
		out[i] = r.intent
	}
	return out
}

// FallbackOrder lists the fallback chain in evaluation order.
func (h *Helpdesk) FallbackOrder() []Intent {
	out := make([]Intent, len(h.fallback))
	for i, s := range h.fallback {
		out[i] = s.intent
	}
	return out
}

// mentionsTransport also accepts glued forms like "route2" that the word
// bounded keywords miss.
func mentionsTransport(text string) bool {
	return transportKeywords.match(text) || routeNumberPattern.MatchString(text)
}

func mentionsAcademics(text string) bool {
	if academicKeywords.match(text) {
		return true
	}
	_, ok := detectSemester(text)
	return ok
}
