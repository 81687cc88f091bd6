package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	for _, path := range [][]string{
		{"serve"},
		{"seed"},
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "version"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{"3"})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	assert.Error(t, err)

	_, err = parseSteps([]string{"many"})
	assert.Error(t, err)
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	printVersion(&out, 1, false, []string{"000002_a.up.sql", "000003_b.up.sql"})
	assert.Equal(t, "version 1 (dirty: false)\npending: 000002_a.up.sql, 000003_b.up.sql\n", out.String())

	out.Reset()
	printVersion(&out, 3, true, nil)
	assert.Equal(t, "version 3 (dirty: true)\nup to date\n", out.String())
}
