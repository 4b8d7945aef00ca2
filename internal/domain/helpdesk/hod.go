package helpdesk

import (
	"fmt"
	"strings"

	"github.com/yanqian/campus-helpdesk/internal/domain/college"
)

// hod resolves a department named in full, then from an alias, then from
// any document key contained in the text, in document order.
func (h *Helpdesk) hod(t string) Result {
	if key, ok := h.namedDepartment(t); ok {
		return h.formatDepartments(key, []string{key})
	}
	if alias, ok := h.aliases.Lookup(t); ok {
		return h.formatDepartments(alias.Alias, alias.Departments)
	}
	for _, key := range h.catalog.DepartmentKeys() {
		if nk := Normalize(key); nk != "" && strings.Contains(t, nk) {
			return h.formatDepartments(key, []string{key})
		}
	}
	return notFound(IntentHOD, msgDepartmentUndefined)
}

// namedDepartment looks for a full department name as whole words. Document
// keys come first; names only the alias table knows come after.
func (h *Helpdesk) namedDepartment(t string) (string, bool) {
	for _, key := range h.catalog.DepartmentKeys() {
		if containsPhrase(t, Normalize(key)) {
			return key, true
		}
	}
	return h.aliases.Department(t)
}

// containsPhrase reports whether normalized phrase occurs in normalized text
// on word boundaries.
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

// formatDepartments renders every requested department the catalog knows.
// Several hits come back tagged ambiguous so the caller can tell the user
// to narrow the question down.
func (h *Helpdesk) formatDepartments(label string, keys []string) Result {
	blocks := make([]string, 0, len(keys))
	for _, key := range keys {
		hod, ok := h.catalog.HOD(key)
		if !ok || hod == (college.HOD{}) {
			continue
		}
		blocks = append(blocks, formatHOD(key, hod))
	}
	switch len(blocks) {
	case 0:
		return notFound(IntentHOD, fmt.Sprintf(msgHODUnavailable, strings.Join(keys, ", ")))
	case 1:
		return found(IntentHOD, blocks[0])
	default:
		text := fmt.Sprintf(msgMultipleDepartments, label) + "\n\n" + strings.Join(blocks, "\n\n")
		return Result{Intent: IntentHOD, Status: StatusAmbiguous, Text: text}
	}
}

func formatHOD(dept string, hod college.HOD) string {
	return strings.Join([]string{
		"👩‍🏫 HOD — " + dept,
		"Name: " + orNotListed(hod.Name),
		"Email: " + orNotListed(hod.Email),
		"Phone: " + orNotListed(hod.Phone),
		"LinkedIn: " + orNotListed(hod.LinkedIn),
	}, "\n")
}

func orNotListed(v college.Scalar) string {
	if v.Empty() {
		return notListed
	}
	return strings.TrimSpace(v.String())
}
