package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "reqvalidate dev (commit none, built unknown)\n", out.String())
}

func TestServeCmd_InvalidConfig(t *testing.T) {
	t.Setenv("REQVALIDATE_OBSERVABILITY__LOGGING__FORMAT", "xml")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := []string{}
	for _, c := range newRootCmd().Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"serve", "version"}, names)
}
