package helpdesk

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/campus-helpdesk/internal/domain/college"
)

func newTestCatalog(t *testing.T) *college.Catalog {
	t.Helper()
	data, err := os.ReadFile("testdata/college.json")
	require.NoError(t, err)
	cat, err := college.Parse(data)
	require.NoError(t, err)
	return cat
}

func newTestHelpdesk(t *testing.T) *Helpdesk {
	t.Helper()
	return NewHelpdesk(newTestCatalog(t), NewAliasTable(DefaultAliases()), "greenfield", "gie")
}

func parseCatalog(t *testing.T, doc string) *college.Catalog {
	t.Helper()
	cat, err := college.Parse([]byte(doc))
	require.NoError(t, err)
	return cat
}
