package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	addConnectionFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestResolveConfigDefaults(t *testing.T) {
	c, err := resolveConfig(newTestCommand(t))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", c.Mongo.Host)
	assert.Equal(t, 27017, c.Mongo.Port)
	assert.Equal(t, "media", c.Mongo.Database)
}

func TestResolveConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MONGO_HOST", "env-host")
	t.Setenv("MONGO_PORT", "28000")

	c, err := resolveConfig(newTestCommand(t, "--port", "29000", "--database", "media_copy", "--log-file", ""))
	require.NoError(t, err)

	assert.Equal(t, "env-host", c.Mongo.Host)
	assert.Equal(t, 29000, c.Mongo.Port)
	assert.Equal(t, "media_copy", c.Mongo.Database)
	assert.Equal(t, "", c.Logging.File)
}

func TestConfirmAction(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "yes", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := confirmAction(strings.NewReader(tt.input), &out, "Continue?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Continue? (y/N): ", out.String())
	}
}

type countingCloser struct {
	closed int
}

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func TestExecuteClosesLogOnFailure(t *testing.T) {
	closer := &countingCloser{}
	failing := &cobra.Command{
		Use:           "failing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logCloser = closer
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return errors.New("failed to ping MongoDB")
		},
	}
	failing.SetArgs([]string{})

	err := execute(failing)

	assert.EqualError(t, err, "failed to ping MongoDB")
	assert.Equal(t, 1, closer.closed)
	assert.Nil(t, logCloser)
}
