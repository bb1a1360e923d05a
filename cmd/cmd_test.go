package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/codeview/internal/tree"
)

const sourceRoot = "../testdata/design_patterns"

// execute runs the root command with args against a config file that does
// not exist, so defaults and CODEVIEW_* overrides apply.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, filepath.Join(t.TempDir(), "missing.yml"), args...)
}

func executeWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CODEVIEW_LOG__LEVEL", "error")
	t.Setenv("CODEVIEW_STORAGE__DRIVER", "memory")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		for _, c := range rootCmd.Commands() {
			c.Flags().VisitAll(func(f *pflag.Flag) {
				f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func names(nodes []*tree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestBuildWritesTree(t *testing.T) {
	output := filepath.Join(t.TempDir(), "site", "data.json")

	out, err := execute(t, "build", "--root", sourceRoot, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "(5 directories, 3 files)")

	forest, err := tree.Load(output)
	require.NoError(t, err)
	assert.Equal(t, []string{"behavioral", "creational"}, names(forest))

	creational := forest[1]
	assert.Equal(t, "./design_patterns/creational", creational.Path)
	assert.Equal(t, []string{"builder", "singleton"}, names(creational.Children))

	observer := forest[0].Children[0]
	require.Len(t, observer.Children, 1)
	assert.Equal(t, "observer.go", observer.Children[0].Name)
	assert.Equal(t, "./design_patterns/behavioral/observer/observer.go", observer.Children[0].Path)
	assert.Contains(t, observer.Children[0].Content, "func (s *Subject) Publish")
}

func TestBuildMissingRootWritesEmptyTree(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "data.json")

	_, err := execute(t, "build", "--root", filepath.Join(dir, "nope"), "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(bytes.TrimSpace(data)))
}

func TestBuildRejectsBadExtension(t *testing.T) {
	_, err := execute(t, "build", "--root", sourceRoot, "--output", filepath.Join(t.TempDir(), "data.json"), "--extension", "go")
	assert.Error(t, err)
}

func TestBuildFlagsOverrideInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "codeview.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("source:\n  root: \"\"\n  extension: go\n"), 0o644))
	output := filepath.Join(dir, "data.json")

	_, err := executeWithConfig(t, cfgPath, "build", "--output", output)
	assert.Error(t, err)

	out, err := executeWithConfig(t, cfgPath, "build", "--root", sourceRoot, "--extension", ".go", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "3 files")
}

func TestSiteBuildsMissingTree(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CODEVIEW_SOURCE__ROOT", sourceRoot)
	t.Setenv("CODEVIEW_OUTPUT", filepath.Join(dir, "missing.json"))
	siteDir := filepath.Join(dir, "public")

	out, err := execute(t, "site", "--output", siteDir)
	require.NoError(t, err)
	assert.Contains(t, out, "3 files")

	for _, name := range []string{"index.html", "style.css", "script.js", "data.json"} {
		_, err := os.Stat(filepath.Join(siteDir, name))
		assert.NoError(t, err, name)
	}
	page, err := os.ReadFile(filepath.Join(siteDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "singleton.go")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "codeview dev ("), out)
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestInitKeepsExistingConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "codeview.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: keep.json\n"), 0o644))

	_, err := executeWithConfig(t, cfgPath, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "output: keep.json\n", string(data))
}
