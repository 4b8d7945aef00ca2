package helpdesk

import "strings"

func (h *Helpdesk) contact(string) Result {
	c := h.catalog
	return found(IntentContact, strings.Join([]string{
		"🏫 " + c.RawName(),
		"📍 Address: " + c.Address(),
		"📧 Email: " + c.Email(),
		"📞 Phone: " + strings.Join(c.Phones(), ", "),
		"🔗 Website: " + c.Website(),
	}, "\n"))
}

func (h *Helpdesk) about(string) Result {
	about := strings.TrimSpace(h.catalog.About())
	if about == "" {
		return notFound(IntentAbout, "ℹ️ "+msgNoAbout)
	}
	return found(IntentAbout, "ℹ️ "+about)
}

func (h *Helpdesk) facilities(string) Result {
	items := h.catalog.Facilities()
	if len(items) == 0 {
		return notFound(IntentFacilities, msgNoFacilities)
	}
	var b strings.Builder
	b.WriteString("🏢 Campus facilities:")
	for _, item := range items {
		b.WriteString("\n• ")
		b.WriteString(item)
	}
	return found(IntentFacilities, b.String())
}
