package helpdesk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const route2Text = "🚌 Route 2\nFrom: Miyapur\nVia: Nizampet\nFare: ₹25\nTimings: 7:10 AM"

func TestRouteNumberNormalization(t *testing.T) {
	h := newTestHelpdesk(t)
	for _, q := range []string{"route 2", "Route 02", "ROUTE2", "bus route 2 timings"} {
		reply := h.Answer(q)
		require.Equal(t, IntentRoute, reply.Intent, q)
		require.Equal(t, StatusFound, reply.Status, q)
		require.Equal(t, route2Text, reply.Text, q)
	}

	reply := h.Answer("route 2A")
	require.Contains(t, reply.Text, "🚌 Route 2A")
	require.Contains(t, reply.Text, "Fare: ₹30")
	require.NotContains(t, reply.Text, "Timings")
}

func TestRouteNotFound(t *testing.T) {
	h := newTestHelpdesk(t)

	reply := h.Answer("route 7")
	require.Equal(t, StatusNotFound, reply.Status)
	require.Equal(t, "No route found for '7'.", reply.Text)

	reply = h.Answer("route 00")
	require.Equal(t, StatusNotFound, reply.Status)
	require.Equal(t, "No route found for '00'.", reply.Text)

	empty := NewHelpdesk(parseCatalog(t, `{"transport": {"routes": [{"route_no": "3", "from": "A"}]}}`), NewAliasTable(nil))
	require.Equal(t, "No route found for '2'.", empty.route("route 2").Text)

	noRoutes := NewHelpdesk(parseCatalog(t, `{}`), NewAliasTable(nil))
	res := noRoutes.route("bus timings")
	require.Equal(t, StatusNotFound, res.Status)
	require.Equal(t, msgNoRoutes, res.Text)
}

func TestRouteMatchesPlaces(t *testing.T) {
	h := newTestHelpdesk(t)

	reply := h.Answer("bus from kukatpally")
	require.True(t, strings.HasPrefix(reply.Text, "🚌 Route 2A\n"))

	reply = h.Answer("which bus goes via begumpet")
	require.True(t, strings.HasPrefix(reply.Text, "🚌 Route 10\n"))
}

// Place matching checks whether any query token occurs inside from or via,
// so short words can select a route before the full listing is reached.
func TestRoutePlaceTokensMatchAsSubstrings(t *testing.T) {
	h := NewHelpdesk(parseCatalog(t, `{"transport": {"routes": [
		{"route_no": "1", "from": "Miyapur", "via": "JNTU", "fare": 20},
		{"route_no": "2", "from": "Secunderabad", "via": "Begumpet, Ameerpet, KPHB", "fare": 25}
	]}}`), NewAliasTable(nil))

	reply := h.Answer("show me the routes")
	require.Equal(t, IntentRoute, reply.Intent)
	require.Equal(t, StatusFound, reply.Status)
	require.True(t, strings.HasPrefix(reply.Text, "🚌 Route 2\n"), reply.Text)

	reply = h.Answer("list all routes")
	require.True(t, strings.HasPrefix(reply.Text, "Available routes"), reply.Text)
}

func TestRouteFaresAndListing(t *testing.T) {
	h := newTestHelpdesk(t)

	reply := h.Answer("bus fares")
	require.Equal(t, StatusFound, reply.Status)
	require.Equal(t, "Route fares:\nRoute 1: ₹20\nRoute 2: ₹25\nRoute 2A: ₹30\nRoute 10: ₹45", reply.Text)

	reply = h.Answer("show transport")
	require.Equal(t, strings.Join([]string{
		"Available routes (route — from → via — fare):",
		"1 — Patancheru → Lingampally — ₹20",
		"2 — Miyapur → Nizampet — ₹25",
		"2A — Kukatpally → JNTU — ₹30",
		"10 — Secunderabad → Begumpet — ₹45",
	}, "\n"), reply.Text)
}

func TestDriverByRoute(t *testing.T) {
	h := newTestHelpdesk(t)

	reply := h.Answer("driver route 1")
	require.Equal(t, IntentDriver, reply.Intent)
	require.Equal(t, "🧑‍✈️ Driver for route 01: Ramesh Kumar — 9100000001", reply.Text)

	reply = h.Answer("driver route 2a")
	require.Equal(t, StatusNotFound, reply.Status)
	require.Equal(t, "No driver found for route '2a'.", reply.Text)
}

func TestDriverByPlaceOrName(t *testing.T) {
	h := newTestHelpdesk(t)

	reply := h.Answer("driver Patancheru")
	require.Equal(t, "🧑‍✈️ Driver — Ramesh Kumar (Route 01, from Patancheru) — 9100000001", reply.Text)

	reply = h.Answer("driver venkat")
	require.Contains(t, reply.Text, "Venkat Reddy (Route 2, from Miyapur)")
}

func TestDriverListAndPrompt(t *testing.T) {
	h := newTestHelpdesk(t)

	reply := h.Answer("all drivers")
	require.Equal(t, strings.Join([]string{
		"Drivers (route — name — contact):",
		"01 — Ramesh Kumar — 9100000001",
		"2 — Venkat Reddy — 9100000002",
		"10 — Imran Shaik — 9100000010",
	}, "\n"), reply.Text)

	reply = h.Answer("driver please")
	require.Equal(t, StatusNotFound, reply.Status)
	require.Equal(t, msgDriverPrompt, reply.Text)

	none := NewHelpdesk(parseCatalog(t, `{}`), NewAliasTable(nil))
	require.Equal(t, msgNoDrivers, none.driver("all drivers").Text)
}
