package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediad/internal/adapters"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "deps")
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "log-level", "packages-dir", "gst-inspect", "dpkg-status"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag: %s", name)
	}
	assert.NotNil(t, root.Flags().Lookup("list-deps"))
	assert.Equal(t, adapters.DefaultPackagesDir, root.PersistentFlags().Lookup("packages-dir").DefValue)
}

// ---------- Report command tests ----------

func writeHostPackage(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "mediad")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.yaml"), []byte("name: mediad\nversion: 3.4.0\n"), 0644))
	return root
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDepsCommandPrintsReport(t *testing.T) {
	packages := writeHostPackage(t)
	out, err := runRoot(t, "deps",
		"--packages-dir", packages,
		"--gst-inspect", "definitely-not-a-real-gst-inspect",
		"--dpkg-status", filepath.Join(packages, "missing-status"),
	)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Platform: "))
	assert.Contains(t, out, "\nGStreamer: not found\n")
	assert.Contains(t, out, "\nmediad: 3.4.0 from "+packages+"\n")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestListDepsFlagPrintsReport(t *testing.T) {
	packages := writeHostPackage(t)
	out, err := runRoot(t, "--list-deps",
		"--packages-dir", packages,
		"--gst-inspect", "definitely-not-a-real-gst-inspect",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "\nmediad: 3.4.0 from "+packages+"\n")
}

func TestDepsCommandMissingStore(t *testing.T) {
	_, err := runRoot(t, "deps",
		"--packages-dir", filepath.Join(t.TempDir(), "missing"),
		"--gst-inspect", "definitely-not-a-real-gst-inspect",
	)
	require.Error(t, err)
	assert.Equal(t, 5, exitCodeForError(err))
}

func TestDepsCommandRejectsArgs(t *testing.T) {
	_, err := runRoot(t, "deps", "extra")
	require.Error(t, err)
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")
}

func TestFlagChangedAfterSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("distribution pykka installed twice"),
			expected: 2,
		},
		{
			name: "version conflict",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("version conflict: pykka 1.0 does not satisfy >=2"),
			expected: 4,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("distribution not found: mediad"),
			expected: 5,
		},
		{
			name: "internal",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("gst-inspect-1.0 failed"),
			expected: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeForError(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("distribution not found: mediad")
	assert.Equal(t, "distribution not found: mediad", errorMessage(err))
}
