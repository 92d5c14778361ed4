package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pengelbrecht/mathops/internal/config"
	"github.com/pengelbrecht/mathops/internal/styles"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv(config.EnvPath, filepath.Join(t.TempDir(), "config.json"))

	jsonOutput, verbose, configPath = false, false, ""
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code = Execute()
	return out.String(), errOut.String(), code
}

func TestAddText(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"positive", []string{"add", "100", "200"}, "100 + 200 = 300"},
		{"negative", []string{"add", "-1", "-2"}, "-1 + -2 = -3"},
		{"mixed", []string{"add", "1", "-2"}, "1 + -2 = -1"},
		{"zero", []string{"add", "0", "5"}, "0 + 5 = 5"},
		{"after dashdash", []string{"add", "--", "-100", "-200"}, "-100 + -200 = -300"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, stderr, code := execute(t, tc.args...)
			require.Equal(t, exitSuccess, code, stderr)
			assert.Equal(t, tc.want, strings.TrimSpace(styles.Plain(out)))
		})
	}
}

func TestAddJSON(t *testing.T) {
	for _, args := range [][]string{
		{"add", "--json", "-1", "2"},
		{"--json", "add", "-1", "2"},
		{"add", "-1", "2", "--json"},
	} {
		out, stderr, code := execute(t, args...)
		require.Equal(t, exitSuccess, code, stderr)

		var got addResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, addResult{A: -1, B: 2, Sum: 1}, got, "args %v", args)
	}
}

func TestAddUsesConfigOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	off := false
	require.NoError(t, config.Save(path, config.Config{Output: config.OutputJSON, Color: &off}))

	out, stderr, code := execute(t, "add", "--config", path, "5", "0")
	require.Equal(t, exitSuccess, code, stderr)
	assert.JSONEq(t, `{"a":5,"b":0,"sum":5}`, out)
}

func forceColor(t *testing.T) {
	t.Helper()
	prev := paletteOptions
	paletteOptions = []styles.Option{styles.WithProfile(termenv.TrueColor)}
	t.Cleanup(func() { paletteOptions = prev })
}

func TestAddColorSetting(t *testing.T) {
	forceColor(t)

	t.Run("enabled by default", func(t *testing.T) {
		out, stderr, code := execute(t, "add", "1", "2")
		require.Equal(t, exitSuccess, code, stderr)
		assert.Contains(t, out, "\x1b[")
		assert.Equal(t, "1 + 2 = 3\n", styles.Plain(out))
	})

	t.Run("disabled in config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		off := false
		require.NoError(t, config.Save(path, config.Config{Color: &off}))

		out, stderr, code := execute(t, "add", "--config="+path, "1", "2")
		require.Equal(t, exitSuccess, code, stderr)
		assert.Equal(t, "1 + 2 = 3\n", out)
	})
}

func TestAddUsageErrors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing operand", []string{"add", "1"}, "accepts 2 arg(s), received 1"},
		{"extra operand", []string{"add", "1", "2", "3"}, "accepts 2 arg(s), received 3"},
		{"not a number", []string{"add", "one", "2"}, `invalid operand "one"`},
		{"out of range", []string{"add", "99999999999999999999", "1"}, `invalid operand "99999999999999999999"`},
		{"negative out of range", []string{"add", "-99999999999999999999", "1"}, `invalid operand "-99999999999999999999"`},
		{"fraction", []string{"add", "1.5", "2"}, `invalid operand "1.5"`},
		{"negative fraction", []string{"add", "-1.5", "2"}, `invalid operand "-1.5"`},
		{"unknown flag", []string{"add", "--nope", "1", "2"}, "unknown flag: --nope"},
		{"config without value", []string{"add", "1", "2", "--config"}, "flag needs an argument"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, stderr, code := execute(t, tc.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, tc.wantErr)
		})
	}
}

func TestAddInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":"yaml"}`), 0o644))

	_, stderr, code := execute(t, "add", "--config", path, "1", "2")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "failed to load config")
}

func TestAddVerboseLogs(t *testing.T) {
	out, stderr, code := execute(t, "add", "-v", "2", "3")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Equal(t, "2 + 3 = 5", strings.TrimSpace(styles.Plain(out)))
	assert.Contains(t, stderr, "sum=5")
}

func TestAddHelp(t *testing.T) {
	out, _, code := execute(t, "add", "--help")
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "mathops add <a> <b>")
}

func TestVersion(t *testing.T) {
	out, stderr, code := execute(t, "version")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Equal(t, "mathops "+Version+"\n", out)
}

func TestUpgradeDevBuild(t *testing.T) {
	prev := Version
	Version = "dev"
	t.Cleanup(func() { Version = prev })

	out, stderr, code := execute(t, "upgrade")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "Current version: dev")
}

func TestUsageExitCodes(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown command", []string{"subtract", "1", "2"}, `unknown command "subtract"`},
		{"version extra", []string{"version", "extra"}, `unknown command "extra"`},
		{"upgrade extra", []string{"upgrade", "extra"}, `unknown command "extra"`},
		{"unknown root flag", []string{"--nope"}, "unknown flag: --nope"},
		{"unknown version flag", []string{"version", "--nope"}, "unknown flag: --nope"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, stderr, code := execute(t, tc.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, tc.wantErr)
		})
	}
}

func TestRootWithoutArgsPrintsHelp(t *testing.T) {
	out, stderr, code := execute(t)
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "Available Commands")
}
