package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RequiresConference(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 arg")
}

func TestRootCommand_RejectsUnknownStatus(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"pycon9", "--talk-status", "rejected"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid talk status")
	assert.Contains(t, err.Error(), "rejected")
}

func TestRootCommand_FlagDefaults(t *testing.T) {
	cmd := newRootCommand()

	status := cmd.Flags().Lookup("talk-status")
	require.NotNil(t, status)
	assert.Equal(t, "proposed", status.DefValue)

	for _, name := range []string{"verbose", "votes", "mail-to"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
