package path

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func TestComponents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "relative", input: "foo/bar", expected: []string{"foo", "bar"}},
		{name: "root", input: "/foo/bar", expected: []string{"foo", "bar"}},
		{name: "current dir", input: "./foo", expected: []string{"foo"}},
		{name: "trailing separator", input: "build/", expected: []string{"build"}},
		{name: "repeated separators", input: "a//b/./c", expected: []string{"a", "b", "c"}},
		{name: "parent kept", input: "../a/../b", expected: []string{"..", "a", "..", "b"}},
		{name: "only root", input: "/", expected: nil},
		{name: "glob", input: "**/*.tmp", expected: []string{"**", "*.tmp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Components(filepath.FromSlash(tt.input)))
		})
	}
}

func TestCanonicalize(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	assert.NoError(t, os.Mkdir(real, 0755))

	link := filepath.Join(dir, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	expected, err := filepath.EvalSymlinks(real)
	assert.NoError(t, err)

	actual, err := Canonicalize(link)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)

	_, err = Canonicalize(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
