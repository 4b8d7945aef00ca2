package helpdesk

import (
	"fmt"
	"strings"

	"github.com/yanqian/campus-helpdesk/internal/domain/college"
)

// route answers bus route questions. Only an explicit "route N" that names
// an unknown route is a miss; otherwise some listing is always useful.
func (h *Helpdesk) route(t string) Result {
	routes := h.catalog.Routes()

	if raw, ok := extractRouteToken(t); ok {
		token := NormalizeRouteToken(raw)
		for _, r := range routes {
			if token != "" && NormalizeRouteToken(r.RouteNo.String()) == token {
				return found(IntentRoute, formatRoute(r))
			}
		}
		return notFound(IntentRoute, fmt.Sprintf(msgRouteNotFound, raw))
	}

	if len(routes) == 0 {
		return notFound(IntentRoute, msgNoRoutes)
	}

	tokens := strings.Fields(t)
	for _, r := range routes {
		from, via := Normalize(r.From.String()), Normalize(r.Via.String())
		for _, tok := range tokens {
			if strings.Contains(from, tok) || strings.Contains(via, tok) {
				return found(IntentRoute, formatRoute(r))
			}
		}
	}

	if fareKeywords.match(t) {
		lines := []string{"Route fares:"}
		for _, r := range routes {
			lines = append(lines, fmt.Sprintf("Route %s: %s", r.RouteNo, fareText(r.Fare)))
		}
		return found(IntentRoute, strings.Join(lines, "\n"))
	}

	lines := []string{"Available routes (route — from → via — fare):"}
	for _, r := range routes {
		lines = append(lines, fmt.Sprintf("%s — %s → %s — %s",
			r.RouteNo, orNotListed(r.From), orNotListed(r.Via), fareText(r.Fare)))
	}
	return found(IntentRoute, strings.Join(lines, "\n"))
}

// driver answers questions about bus drivers.
func (h *Helpdesk) driver(t string) Result {
	drivers := h.catalog.Drivers()

	if raw, ok := extractRouteToken(t); ok {
		token := NormalizeRouteToken(raw)
		for _, d := range drivers {
			if token != "" && NormalizeRouteToken(d.RouteNo.String()) == token {
				return found(IntentDriver, fmt.Sprintf("🧑‍✈️ Driver for route %s: %s — %s",
					d.RouteNo, orNotListed(d.DriverName), orNotListed(d.Contact)))
			}
		}
		return notFound(IntentDriver, fmt.Sprintf(msgDriverNotFound, raw))
	}

	tokens := strings.Fields(t)
	for _, d := range drivers {
		if mentions(t, tokens, d.From) || mentions(t, tokens, d.DriverName) {
			return found(IntentDriver, fmt.Sprintf("🧑‍✈️ Driver — %s (Route %s, from %s) — %s",
				orNotListed(d.DriverName), d.RouteNo, orNotListed(d.From), orNotListed(d.Contact)))
		}
	}

	if driverListKeywords.match(t) {
		if len(drivers) == 0 {
			return notFound(IntentDriver, msgNoDrivers)
		}
		lines := []string{"Drivers (route — name — contact):"}
		for _, d := range drivers {
			lines = append(lines, fmt.Sprintf("%s — %s — %s",
				d.RouteNo, orNotListed(d.DriverName), orNotListed(d.Contact)))
		}
		return found(IntentDriver, strings.Join(lines, "\n"))
	}

	return notFound(IntentDriver, msgDriverPrompt)
}

// mentions reports whether the normalized field appears in text, or a text
// token is one of the field's words. Token-in-field substring matching is
// avoided: short words like "a" would hit almost every name.
func mentions(text string, tokens []string, field college.Scalar) bool {
	nf := Normalize(field.String())
	if nf == "" {
		return false
	}
	if strings.Contains(text, nf) {
		return true
	}
	words := strings.Fields(nf)
	for _, tok := range tokens {
		for _, w := range words {
			if tok == w {
				return true
			}
		}
	}
	return false
}

func formatRoute(r college.Route) string {
	lines := []string{
		fmt.Sprintf("🚌 Route %s", r.RouteNo),
		"From: " + orNotListed(r.From),
		"Via: " + orNotListed(r.Via),
		"Fare: " + fareText(r.Fare),
	}
	if !r.Timings.Empty() {
		lines = append(lines, "Timings: "+strings.TrimSpace(r.Timings.String()))
	}
	return strings.Join(lines, "\n")
}

func fareText(fare college.Scalar) string {
	if fare.Empty() {
		return notListed
	}
	return "₹" + strings.TrimSpace(fare.String())
}
