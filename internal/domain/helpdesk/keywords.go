package helpdesk

import (
	"regexp"
	"sort"
	"strings"
)

// keywordSet matches any of its phrases as whole words of normalized text.
// A phrase ending in "*" is a stem: it must start a word but may run on,
// so "transport*" also matches "transportation".
type keywordSet struct {
	words []string
	re    *regexp.Regexp
}

func newKeywordSet(words ...string) keywordSet {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		stem := strings.HasSuffix(w, "*")
		if w = Normalize(strings.TrimSuffix(w, "*")); w == "" {
			continue
		}
		if stem {
			w += "*"
		}
		cleaned = append(cleaned, w)
	}
	if len(cleaned) == 0 {
		return keywordSet{}
	}
	// longest first so multi-word phrases win over their prefixes
	ordered := append([]string(nil), cleaned...)
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })
	quoted := make([]string, len(ordered))
	for i, w := range ordered {
		base := strings.TrimSuffix(w, "*")
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(base), " ", `\s+`)
		if base != w {
			quoted[i] += `\w*`
		}
	}
	return keywordSet{
		words: cleaned,
		re:    regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

func (k keywordSet) match(text string) bool {
	if k.re == nil || text == "" {
		return false
	}
	return k.re.MatchString(text)
}

func (k keywordSet) with(extra ...string) keywordSet {
	return newKeywordSet(append(append([]string(nil), k.words...), extra...)...)
}

var (
	hodKeywords       = newKeywordSet("hod", "hods", "head of", "who is hod", "who is head")
	driverKeywords    = newKeywordSet("driver", "drivers", "driver list")
	transportKeywords = newKeywordSet("route", "routes", "bus", "buses", "transport*", "fare", "fares")
	academicKeywords  = newKeywordSet(
		"academic*",
		"sessional", "sessionals", "sessional1", "sessional2", "sessional i", "sessional ii",
		"end exam", "end exams", "sem", "sems", "semester*",
	)
	contactKeywords    = newKeywordSet("address", "contact", "contacts", "email", "phone", "phones", "where is")
	facilityKeywords   = newKeywordSet("facilit*", "amenit*")
	aboutKeywords      = newKeywordSet("about")
	fareKeywords       = newKeywordSet("fare", "fares")
	driverListKeywords = newKeywordSet("drivers", "driver list", "all drivers")

	// Guard for the academics handler; wider than academicKeywords so
	// abbreviations that only the handler understands still count.
	academicGuardKeywords = academicKeywords.with("ca i", "ca ii")
)
