package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedListDB creates a database with two entries (ids 1 and 2).
func seedListDB(t *testing.T) string {
	t.Helper()
	db := testDB(t)
	mustRunCLI(t, "set", "a", "--db", db, "-v", "v1", "-a", "w1")
	mustRunCLI(t, "set", "b", "--db", db, "-v", "v2", "-a", "w2")
	return db
}

func TestListEmptyStore(t *testing.T) {
	db := testDB(t)

	out := mustRunCLI(t, "list", "--db", db)
	assert.Equal(t, "\n", out)
}

func TestListSingleEntryJSON(t *testing.T) {
	db := testDB(t)
	mustRunCLI(t, "set", "a", "--db", db, "-v", "v", "-a", "w")

	out := mustRunCLI(t, "list", "--db", db, "--format", "json")
	assert.Equal(t, `{ "_id": "1", "name": "a", "value": "v", "alternate": "w" }`+"\n\n", out)
}

func TestListGolden(t *testing.T) {
	db := seedListDB(t)

	for _, format := range ValidListFormats {
		t.Run(format, func(t *testing.T) {
			out := mustRunCLI(t, "list", "--db", db, "--format", format)

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, "list_"+format, []byte(out))
		})
	}
}

func TestListInvalidFormat(t *testing.T) {
	db := testDB(t)

	_, err := runCLI(t, "list", "--db", db, "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestListRejectsArgs(t *testing.T) {
	_, err := runCLI(t, "list", "extra", "--db", testDB(t))
	require.Error(t, err)
}
