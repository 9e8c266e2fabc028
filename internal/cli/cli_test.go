package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixture = map[string]string{
	"common/part/bar/ccc/ddd/eee.txt": "one two six ten red big cat dog hat sun run bees tree",
	"common/part/foo/aaa/bbb.txt":     "The quick brown fox ran\n",
	"common/part/foo/aaa/ccc.txt":     "a bb cc dd eeee\n",
	"common/part/foo/bar/baz.txt":     "Hello, world!\n",
}

var fixturePaths = []string{
	"common/part/foo/bar/baz.txt",
	"common/part/foo/aaa/ccc.txt",
	"common/part/foo/aaa/bbb.txt",
	"common/part/bar/ccc/ddd/eee.txt",
}

// setupProject writes the fixture into a fresh project directory and points
// the global config at an empty one.
func setupProject(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	for path, content := range fixture {
		fullPath := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, stdin string, args ...string) ([]string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"), err
}

var treeReport = []string{
	"bar/ccc/ddd/eee.txt : 13 words 53 characters",
	"foo : 12 words 54 characters",
	"├─ aaa : 10 words 40 characters",
	"│   ├─ bbb.txt : 5 words 24 characters",
	"│   └─ ccc.txt : 5 words 16 characters",
	"└─ bar/baz.txt : 2 words 14 characters",
	"Total : 25 words 107 characters",
}

var flatReport = []string{
	"common/part/bar/ccc/ddd/eee.txt : 13 words 53 characters",
	"common/part/foo/aaa/bbb.txt : 5 words 24 characters",
	"common/part/foo/aaa/ccc.txt : 5 words 16 characters",
	"common/part/foo/aaa : 10 words 40 characters",
	"common/part/foo/bar/baz.txt : 2 words 14 characters",
	"common/part/foo : 12 words 54 characters",
	"Total : 25 words 107 characters",
}

func TestReportCmd(t *testing.T) {
	t.Run("report subcommand", func(t *testing.T) {
		dir := setupProject(t)
		lines, err := execute(t, "", append([]string{"report", "--dir", dir}, fixturePaths...)...)
		require.NoError(t, err)
		assert.Equal(t, treeReport, lines)
	})

	t.Run("root command reports", func(t *testing.T) {
		dir := setupProject(t)
		lines, err := execute(t, "", append([]string{"--dir", dir, "--tree=false"}, fixturePaths...)...)
		require.NoError(t, err)
		assert.Equal(t, flatReport, lines)
	})

	t.Run("reads file list from stdin", func(t *testing.T) {
		dir := setupProject(t)
		stdin := strings.Join(fixturePaths, "\n") + "\n\n"
		lines, err := execute(t, stdin, "report", "--dir", dir)
		require.NoError(t, err)
		assert.Equal(t, treeReport, lines)
	})

	t.Run("ignored files are not counted", func(t *testing.T) {
		dir := setupProject(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".countstatignore"), []byte("bar/\n"), 0o644))

		lines, err := execute(t, "", append([]string{"report", "--dir", dir, "--tree=false", "--show-dir=false"}, fixturePaths...)...)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"common/part/foo/aaa/bbb.txt : 5 words 24 characters",
			"common/part/foo/aaa/ccc.txt : 5 words 16 characters",
			"Total : 10 words 40 characters",
		}, lines)
	})

	t.Run("stored config applies to unset flags", func(t *testing.T) {
		dir := setupProject(t)
		_, err := execute(t, "", "config", "set", "report.tree", "false", "--dir", dir)
		require.NoError(t, err)

		lines, err := execute(t, "", append([]string{"report", "--dir", dir}, fixturePaths...)...)
		require.NoError(t, err)
		assert.Equal(t, flatReport, lines)

		lines, err = execute(t, "", append([]string{"report", "--dir", dir, "--tree"}, fixturePaths...)...)
		require.NoError(t, err)
		assert.Equal(t, treeReport, lines)
	})

	t.Run("environment applies to unset flags", func(t *testing.T) {
		dir := setupProject(t)
		t.Setenv("COUNTSTAT_SHOW_TOTAL", "false")
		t.Setenv("COUNTSTAT_CHARS", "false")

		lines, err := execute(t, "", append([]string{"report", "--dir", dir}, fixturePaths...)...)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"bar/ccc/ddd/eee.txt : 13 words",
			"foo : 12 words",
			"├─ aaa : 10 words",
			"│   ├─ bbb.txt : 5 words",
			"│   └─ ccc.txt : 5 words",
			"└─ bar/baz.txt : 2 words",
		}, lines)
	})

	t.Run("json format", func(t *testing.T) {
		dir := setupProject(t)
		lines, err := execute(t, "", append([]string{"report", "--dir", dir, "--format", "json"}, fixturePaths...)...)
		require.NoError(t, err)
		out := strings.Join(lines, "\n")
		assert.Contains(t, out, `"_count"`)
		assert.Contains(t, out, `"total"`)
	})

	t.Run("missing file", func(t *testing.T) {
		dir := setupProject(t)
		_, err := execute(t, "", "report", "--dir", dir, "missing.txt")
		assert.Error(t, err)
	})

	t.Run("unknown segmenter", func(t *testing.T) {
		dir := setupProject(t)
		_, err := execute(t, "", "report", "--dir", dir, "--segmenter", "mecab", fixturePaths[0])
		assert.Error(t, err)
	})
}

func TestCountCmd(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	t.Run("counts stdin", func(t *testing.T) {
		lines, err := execute(t, "Hello, world!", "count", "--dir", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, []string{"2 words 13 characters"}, lines)
	})

	t.Run("counts japanese", func(t *testing.T) {
		lines, err := execute(t, "日本語のテスト", "count", "--dir", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, []string{"4 words 7 characters"}, lines)
	})

	t.Run("decodes base64", func(t *testing.T) {
		lines, err := execute(t, "SGVsbG8sIHdvcmxkIQ==", "count", "--dir", t.TempDir(), "--encoding", "base64")
		require.NoError(t, err)
		assert.Equal(t, []string{"2 words 13 characters"}, lines)
	})

	t.Run("counts a file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "hello.txt")
		require.NoError(t, os.WriteFile(path, []byte("Hello, world!"), 0o644))

		lines, err := execute(t, "", "count", "--dir", dir, "--chars=false", path)
		require.NoError(t, err)
		assert.Equal(t, []string{path + " : 2 words"}, lines)
	})

	t.Run("json format", func(t *testing.T) {
		lines, err := execute(t, "Hello, world!", "count", "--dir", t.TempDir(), "--format", "json")
		require.NoError(t, err)
		assert.Equal(t, []string{`{"words":2,"chars":13}`}, lines)
	})

	t.Run("yaml format", func(t *testing.T) {
		lines, err := execute(t, "Hello, world!", "count", "--dir", t.TempDir(), "--format", "yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"words: 2", "chars: 13"}, lines)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := execute(t, "Hello", "count", "--dir", t.TempDir(), "--encoding", "rot13")
		assert.Error(t, err)
	})
}

func TestTreeCmd(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	stdin := strings.Join(fixturePaths, "\n")

	t.Run("renders paths", func(t *testing.T) {
		lines, err := execute(t, "a/b.txt\na/c.txt\nd.txt", "tree", "--dir", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, []string{
			".",
			"├─ a",
			"│   ├─ b.txt",
			"│   └─ c.txt",
			"└─ d.txt",
		}, lines)
	})

	t.Run("sorts and folds", func(t *testing.T) {
		lines, err := execute(t, stdin, "tree", "--dir", t.TempDir(), "--sort", "--fold", "--skip-root")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"bar/ccc/ddd/eee.txt",
			"foo",
			"├─ aaa",
			"│   ├─ bbb.txt",
			"│   └─ ccc.txt",
			"└─ bar/baz.txt",
		}, lines)
	})

	t.Run("folds the root only", func(t *testing.T) {
		lines, err := execute(t, "x/y/a.txt\nx/y/z/b.txt", "tree", "--dir", t.TempDir(), "--fold-root")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"x/y",
			"├─ a.txt",
			"└─ z",
			"     └─ b.txt",
		}, lines)
	})

	t.Run("yaml format", func(t *testing.T) {
		lines, err := execute(t, "a/b.txt", "tree", "--dir", t.TempDir(), "--format", "yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"a:", "    b.txt: {}"}, lines)
	})
}

func TestConfigCmd(t *testing.T) {
	t.Run("set, get and unset", func(t *testing.T) {
		dir := setupProject(t)

		lines, err := execute(t, "", "config", "get", "report.format", "--dir", dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"report.format = text (default)"}, lines)

		lines, err = execute(t, "", "config", "set", "report.format", "yaml", "--dir", dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"Set report.format = yaml"}, lines)

		lines, err = execute(t, "", "config", "get", "report.format", "--dir", dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"report.format = yaml"}, lines)

		lines, err = execute(t, "", "config", "unset", "report.format", "--dir", dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"Unset report.format"}, lines)

		lines, err = execute(t, "", "config", "get", "report.format", "--dir", dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"report.format = text (default)"}, lines)
	})

	t.Run("list", func(t *testing.T) {
		dir := setupProject(t)
		lines, err := execute(t, "", "config", "list", "--dir", dir)
		require.NoError(t, err)
		out := strings.Join(lines, "\n")
		for _, option := range configOptions {
			assert.Contains(t, out, option.Key)
		}
	})

	t.Run("rejects unknown keys and invalid values", func(t *testing.T) {
		dir := setupProject(t)
		_, err := execute(t, "", "config", "set", "output.file", "x", "--dir", dir)
		assert.Error(t, err)

		_, err = execute(t, "", "config", "set", "report.tree", "maybe", "--dir", dir)
		assert.Error(t, err)

		_, err = execute(t, "", "config", "set", "count.encoding", "rot13", "--dir", dir)
		assert.Error(t, err)
	})

	t.Run("every option maps to a flag", func(t *testing.T) {
		root := NewRootCmd()
		for _, option := range configOptions {
			assert.NotNil(t, root.Flags().Lookup(option.Flag), option.Key)
		}
	})
}
