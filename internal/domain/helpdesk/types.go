package helpdesk

// Intent names the handler that produced an answer.
type Intent string

const (
	IntentHOD        Intent = "hod"
	IntentDriver     Intent = "driver"
	IntentRoute      Intent = "route"
	IntentAcademics  Intent = "academics"
	IntentContact    Intent = "contact"
	IntentFacilities Intent = "facilities"
	IntentAbout      Intent = "about"
	IntentUsage      Intent = "usage"
	IntentUnknown    Intent = "unknown"
)

// Status tags whether a handler actually found what was asked for.
// Routing decisions read the tag, never the answer text.
type Status string

const (
	StatusFound     Status = "found"
	StatusNotFound  Status = "not_found"
	StatusAmbiguous Status = "ambiguous"
)

// Result is a handler's answer.
type Result struct {
	Intent Intent
	Status Status
	Text   string
}

// Matched reports whether the result answers the query, possibly with
// several candidates.
func (r Result) Matched() bool {
	return r.Status == StatusFound || r.Status == StatusAmbiguous
}

func found(intent Intent, text string) Result {
	return Result{Intent: intent, Status: StatusFound, Text: text}
}

func notFound(intent Intent, text string) Result {
	return Result{Intent: intent, Status: StatusNotFound, Text: text}
}

// Reply is a dispatched answer.
type Reply struct {
	Result
	// Fallback is set when no keyword group matched and a fallback step
	// accepted the query.
	Fallback bool
}

// Request is the chat payload accepted by the service.
type Request struct {
	Message string `json:"message"`
}

// Response is returned to the HTTP transport.
type Response struct {
	Answer   string `json:"answer"`
	Intent   Intent `json:"intent"`
	Status   Status `json:"status"`
	Fallback bool   `json:"fallback"`
}

// TrendingQuery is a frequently asked normalized query.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// Config holds runtime knobs for the helpdesk service.
type Config struct {
	// CollegeAliases are extra words (short names of the college) that
	// route a query to the about handler.
	CollegeAliases []string
	RecordQueries  bool
	TopTrending    int
}
