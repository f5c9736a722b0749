package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRootCommand_HasRunCommand verifies the command tree wiring.
func TestNewRootCommand_HasRunCommand(t *testing.T) {
	root := NewRootCommand()

	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	assert.Equal(t, "run <file_path>", run.Use)
	assert.True(t, run.Flags().HasAvailableFlags())

	flag := run.Flags().Lookup("headless")
	require.NotNil(t, flag)
	assert.Equal(t, "true", flag.DefValue)
}

// TestRunCommand_RequiresFileArgument verifies the file path is mandatory.
func TestRunCommand_RequiresFileArgument(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"run"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
