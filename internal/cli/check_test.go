package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAbsentEntry(t *testing.T) {
	db := testDB(t)

	out := mustRunCLI(t, "check", "feature_x", "--db", db)
	assert.Equal(t, "false\n", out)
}

func TestCheckPresentEntry(t *testing.T) {
	db := testDB(t)
	mustRunCLI(t, "set", "feature_x", "--db", db, "-v", "off", "-a", "on")

	out := mustRunCLI(t, "check", "feature_x", "--db", db)
	assert.Equal(t, "true\n", out)
}
