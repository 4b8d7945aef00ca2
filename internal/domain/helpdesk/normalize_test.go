package helpdesk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"  Hello, World!  ", "hello world"},
		{"HOD of C.S.E?", "hod of c s e"},
		{"Route-02", "route 02"},
		{"snake_case stays", "snake_case stays"},
		{"Cafe\u0301 menu", "caf\u00e9 menu"},
		{"\U0001F469\u200d\U0001F3EB hi\tthere\n", "hi there"},
		{"AI & DS", "ai ds"},
		{"Sessional-II (sem1)", "sessional ii sem1"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, in := range []string{"HOD of Computer Science & Engineering", "Route 02A!!", "  x  y  "} {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once))
	}
}

func TestNormalizeRouteToken(t *testing.T) {
	cases := map[string]string{
		"02":  "2",
		"2":   "2",
		"2A":  "2a",
		"2-a": "2a",
		"10":  "10",
		"0 2": "2",
		"00":  "",
		"":    "",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeRouteToken(in), "input %q", in)
	}
}
