package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "config-store", cmd.Use)
	assert.Contains(t, cmd.Long, "shell scripts")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"set", "get", "toggle", "delete", "check", "list", "drop"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "false", verboseFlag.DefValue)
}

func TestSetCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	setCmd, _, err := cmd.Find([]string{"set"})
	require.NoError(t, err)

	valueFlag := setCmd.Flags().Lookup("value")
	require.NotNil(t, valueFlag)
	assert.Equal(t, "v", valueFlag.Shorthand)

	alternateFlag := setCmd.Flags().Lookup("alternate")
	require.NotNil(t, alternateFlag)
	assert.Equal(t, "a", alternateFlag.Shorthand)

	changeOnlyFlag := setCmd.Flags().Lookup("change-only")
	require.NotNil(t, changeOnlyFlag)
	assert.Equal(t, "c", changeOnlyFlag.Shorthand)
	assert.Equal(t, "false", changeOnlyFlag.DefValue)
}

func TestGetCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	getCmd, _, err := cmd.Find([]string{"get"})
	require.NoError(t, err)

	for _, name := range []string{"value-only", "alternate-only", "json"} {
		flag := getCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "flag %s should exist", name)
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestListCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	listCmd, _, err := cmd.Find([]string{"list"})
	require.NoError(t, err)

	formatFlag := listCmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "debug", formatFlag.DefValue)
}

func TestResolveDatabase_FlagWins(t *testing.T) {
	path, err := resolveDatabase(&RootOptions{Database: "/tmp/flag.db", ConfigFile: "/does/not/matter.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.db", path)
}

func TestResolveDatabase_ExplicitConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database:\n  path: /tmp/from-config.db\n"), 0o644))

	path, err := resolveDatabase(&RootOptions{ConfigFile: cfgPath})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-config.db", path)
}

func TestResolveDatabase_ExplicitConfigMissing(t *testing.T) {
	_, err := resolveDatabase(&RootOptions{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}

func TestResolveDatabase_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := resolveDatabase(&RootOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/config-store.db", path)
}
