package helpdesk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractRouteToken(t *testing.T) {
	token, ok := extractRouteToken("route 02")
	require.True(t, ok)
	require.Equal(t, "02", token)

	token, ok = extractRouteToken("bus route2a timings")
	require.True(t, ok)
	require.Equal(t, "2a", token)

	_, ok = extractRouteToken("what routes are there")
	require.False(t, ok)
}

func TestDetectSemester(t *testing.T) {
	sem, ok := detectSemester("sessional i sem 1")
	require.True(t, ok)
	require.Equal(t, "1", sem)

	sem, ok = detectSemester("end exams semester8")
	require.True(t, ok)
	require.Equal(t, "8", sem)

	for _, text := range []string{"sem 9", "sem 12", "seminar 1", "no filter"} {
		_, ok = detectSemester(text)
		require.False(t, ok, text)
	}
}

func TestDetectYearPrefersOrdinals(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"academic calendar 2nd year", "2"},
		{"sessional 1 3rd year", "3"},
		{"fourth year end exams", "4"},
		{"first year", "1"},
		{"year 2 calendar", "2"},
	}
	for _, tc := range cases {
		year, ok := detectYear(tc.text)
		require.True(t, ok, tc.text)
		require.Equal(t, tc.want, year, tc.text)
	}

	_, ok := detectYear("calendar 21")
	require.False(t, ok)
}

func TestDetectEventType(t *testing.T) {
	cases := []struct {
		text string
		want EventType
	}{
		{"sessional i sem 1", EventSessionalI},
		{"sessional1", EventSessionalI},
		{"ca i dates", EventSessionalI},
		{"sessional ii sem 1", EventSessionalII},
		{"sessional2", EventSessionalII},
		{"ca ii", EventSessionalII},
		{"end exams sem 4", EventEndExams},
		{"end sem exams", EventEndExams},
		{"semester end dates", EventEndExams},
		{"end examinations", EventEndExams},
	}
	for _, tc := range cases {
		got, ok := detectEventType(tc.text)
		require.True(t, ok, tc.text)
		require.Equal(t, tc.want, got, tc.text)
	}

	for _, text := range []string{"sessional", "academic calendar", "sessional iii"} {
		_, ok := detectEventType(text)
		require.False(t, ok, text)
	}
}

func TestSameNumber(t *testing.T) {
	require.True(t, sameNumber("01", "1"))
	require.True(t, sameNumber(" 2", "2"))
	require.True(t, sameNumber("II", "ii"))
	require.False(t, sameNumber("1", "2"))
	require.Equal(t, 99, sortableNumber("summer"))
	require.Equal(t, 3, sortableNumber(" 3 "))
}

func TestKeywordSetsMatchWholeWords(t *testing.T) {
	require.True(t, hodKeywords.match("who is the hod of cse"))
	require.True(t, hodKeywords.match("head of mechanical"))
	require.False(t, hodKeywords.match("method of teaching"))

	require.True(t, transportKeywords.match("bus fares"))
	require.False(t, transportKeywords.match("business school"))

	require.True(t, academicKeywords.match("sem 1"))
	require.False(t, academicKeywords.match("seminar hall"))
	require.False(t, academicKeywords.match("ca i dates"))
	require.True(t, academicGuardKeywords.match("ca i dates"))

	require.False(t, keywordSet{}.match("anything"))
	require.True(t, aboutKeywords.with("gie").match("what is gie"))
}

func TestKeywordSetStems(t *testing.T) {
	require.True(t, transportKeywords.match("college transportation details"))
	require.True(t, academicKeywords.match("academically strong"))
	require.True(t, academicKeywords.match("semesterwise plan"))
	require.True(t, facilityKeywords.match("facility"))
	require.True(t, facilityKeywords.match("amenities on campus"))

	require.False(t, transportKeywords.match("mass rapid transit"))
	require.False(t, academicKeywords.match("nonacademic staff"))
	require.False(t, academicKeywords.match("seminar hall"))

	stems := newKeywordSet("run*", "run away")
	require.True(t, stems.with("walk").match("walk home"))
	require.True(t, stems.match("running late"))
	require.False(t, stems.match("rerun"))
}

func TestAliasTable(t *testing.T) {
	table := NewAliasTable([]DeptAlias{
		{Alias: "  ", Departments: []string{"Ignored"}},
		{Alias: "empty"},
		{Alias: "DS", Departments: []string{"AI & DS, Cyber & DS"}},
	})
	require.Equal(t, 1, table.Len())

	alias, ok := table.Lookup("hod of ds")
	require.True(t, ok)
	require.Equal(t, "ds", alias.Alias)
	require.Equal(t, []string{"AI & DS", "Cyber & DS"}, alias.Departments)

	_, ok = table.Lookup("hod of dsp")
	require.False(t, ok)
}

func TestDefaultAliasesKeepLookupOrder(t *testing.T) {
	table := NewAliasTable(DefaultAliases())
	require.Equal(t, len(DefaultAliases()), table.Len())

	alias, ok := table.Lookup("hod of computer science")
	require.True(t, ok)
	require.Equal(t, "computer science", alias.Alias)

	_, ok = table.Lookup("hod of mechanical engineering")
	require.False(t, ok, "mech must not match inside mechanical")
}
