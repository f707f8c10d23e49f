package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRejectsInvalidFormat(t *testing.T) {
	_, err := executeCommand(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootHasExpectedSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "delete")
	assert.Contains(t, names, "generate")
}

func TestConfigFileSelectsStorePath(t *testing.T) {
	dir := t.TempDir()
	storeFile := filepath.Join(dir, "vault.csv")
	cfgPath := filepath.Join(dir, "passman.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file: "+storeFile+"\n"), 0o600))

	_, err := executeCommand(t, "add", "github", "alice", "-p", "x", "--config", cfgPath)
	require.NoError(t, err)

	_, statErr := os.Stat(storeFile)
	assert.NoError(t, statErr, "store must be created at the configured path")
}

func TestFileFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgStore := filepath.Join(dir, "from-config.csv")
	flagStore := filepath.Join(dir, "from-flag.csv")
	cfgPath := filepath.Join(dir, "passman.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file: "+cfgStore+"\n"), 0o600))

	_, err := executeCommand(t, "add", "github", "alice", "-p", "x", "--config", cfgPath, "--file", flagStore)
	require.NoError(t, err)

	_, statErr := os.Stat(flagStore)
	assert.NoError(t, statErr)
	_, statErr = os.Stat(cfgStore)
	assert.True(t, os.IsNotExist(statErr), "config path must lose to the flag")
}

func TestBadConfigIsCommandError(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "passman.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("password_length: 0\n"), 0o600))

	_, err := executeCommand(t, "list", "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestUnwritableStoreIsCommandError(t *testing.T) {
	_, err := executeCommand(t, "list", "--file", filepath.Join(t.TempDir(), "no", "dir", "x.csv"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
