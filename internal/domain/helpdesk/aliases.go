package helpdesk

import (
	"regexp"
	"strings"
)

// DeptAlias maps a short token to one or more canonical department keys.
type DeptAlias struct {
	Alias       string
	Departments []string
}

// AliasTable is an ordered alias list; the first alias found in a query wins.
// It also knows the full names its aliases point at.
type AliasTable struct {
	entries []aliasEntry
	names   []departmentName
}

type departmentName struct {
	key        string
	normalized string
}

type aliasEntry struct {
	DeptAlias
	re *regexp.Regexp
}

// NewAliasTable compiles aliases in the given order. Aliases that normalize
// to nothing or carry no departments are skipped.
func NewAliasTable(aliases []DeptAlias) AliasTable {
	table := AliasTable{entries: make([]aliasEntry, 0, len(aliases))}
	for _, a := range aliases {
		alias := Normalize(a.Alias)
		depts := cleanDepartments(a.Departments)
		if alias == "" || len(depts) == 0 {
			continue
		}
		pattern := strings.ReplaceAll(regexp.QuoteMeta(alias), " ", `\s+`)
		table.entries = append(table.entries, aliasEntry{
			DeptAlias: DeptAlias{Alias: alias, Departments: depts},
			re:        regexp.MustCompile(`\b` + pattern + `\b`),
		})
		for _, d := range depts {
			table.addName(d)
		}
	}
	return table
}

func (t *AliasTable) addName(dept string) {
	n := Normalize(dept)
	if n == "" {
		return
	}
	for _, existing := range t.names {
		if existing.normalized == n {
			return
		}
	}
	t.names = append(t.names, departmentName{key: dept, normalized: n})
}

// DefaultAliases returns the campus department shorthands.
func DefaultAliases() []DeptAlias {
	const (
		cse   = "Computer Science & Engineering"
		aids  = "Artificial Intelligence & Data Science"
		csds  = "Cyber Security & Data Science"
		aiml  = "CSE-AI&ML & IoT"
		it    = "Information Technology"
		ece   = "Electronics & Communication Engineering"
		eee   = "Electrical & Electronics Engineering"
		mech  = "Mechanical Engineering"
		civil = "Civil Engineering"
		chem  = "Chemistry"
		auto  = "Automobile Engineering"
		eie   = "Electronics Instrumentation Engineering"
	)
	return []DeptAlias{
		{Alias: "cse", Departments: []string{cse}},
		{Alias: "computer science", Departments: []string{cse}},
		{Alias: "cs", Departments: []string{cse}},
		{Alias: "ds", Departments: []string{aids, csds}},
		{Alias: "aids", Departments: []string{aids, csds}},
		{Alias: "cyber", Departments: []string{aids, csds}},
		{Alias: "aiml", Departments: []string{aiml}},
		{Alias: "it", Departments: []string{it}},
		{Alias: "ece", Departments: []string{ece}},
		{Alias: "eee", Departments: []string{eee}},
		{Alias: "mech", Departments: []string{mech}},
		{Alias: "civil", Departments: []string{civil}},
		{Alias: "chem", Departments: []string{chem}},
		{Alias: "auto", Departments: []string{auto}},
		{Alias: "eie", Departments: []string{eie}},
	}
}

// Lookup returns the first alias appearing as a whole word in text.
func (t AliasTable) Lookup(text string) (DeptAlias, bool) {
	for _, e := range t.entries {
		if e.re.MatchString(text) {
			return e.DeptAlias, true
		}
	}
	return DeptAlias{}, false
}

// Department returns the first department whose full name appears as whole
// words in text.
func (t AliasTable) Department(text string) (string, bool) {
	for _, n := range t.names {
		if containsPhrase(text, n.normalized) {
			return n.key, true
		}
	}
	return "", false
}

// Len reports the number of usable aliases.
func (t AliasTable) Len() int { return len(t.entries) }

// Aliases returns the compiled aliases in lookup order.
func (t AliasTable) Aliases() []DeptAlias {
	out := make([]DeptAlias, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.DeptAlias
	}
	return out
}

// cleanDepartments also splits comma-joined keys, the legacy way of
// writing a multi-department alias.
func cleanDepartments(depts []string) []string {
	out := make([]string, 0, len(depts))
	for _, d := range depts {
		for _, part := range strings.Split(d, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
