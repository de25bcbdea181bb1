package testUtil

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

type Space struct {
	t       *testing.T
	Dir     string
	CleanUp func()
}

// BeginTestSpace changes into a fresh temporary directory. Dir has symlinks
// resolved so it compares equal to what the commands see.
func BeginTestSpace(t *testing.T) Space {
	t.Helper()

	originalDir, err := os.Getwd()
	require.NoError(t, err)

	tempDir, err := os.MkdirTemp("", "")
	require.NoError(t, err)

	tempDir, err = filepath.EvalSymlinks(tempDir)
	require.NoError(t, err)

	require.NoError(t, os.Chdir(tempDir))

	cleanup := func() {
		os.Chdir(originalDir)
		os.RemoveAll(tempDir)
	}

	return Space{
		t:       t,
		Dir:     tempDir,
		CleanUp: cleanup,
	}
}

// Chdir moves into path, relative to the space root.
func (s Space) Chdir(path string) {
	s.t.Helper()

	err := os.Chdir(filepath.Join(s.Dir, path))
	assert.NoError(s.t, err)
}

func (s Space) Mkdir(path string) {
	s.t.Helper()

	err := os.MkdirAll(filepath.Join(s.Dir, path), os.ModePerm)
	assert.NoError(s.t, err)
}

func (s Space) WriteFile(path string, content []byte) {
	s.t.Helper()

	path = filepath.Join(s.Dir, path)
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, os.ModePerm)
	assert.NoError(s.t, err)

	err = os.WriteFile(path, content, 0644)
	assert.NoError(s.t, err)
}

func (s Space) AssertFile(path string, assertion func(actual []byte)) {
	s.t.Helper()

	actual, err := os.ReadFile(filepath.Join(s.Dir, path))
	assert.NoError(s.t, err)

	assertion(actual)
}

func (s Space) AssertExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(filepath.Join(s.Dir, path))
	assert.NoError(s.t, err)
}

func (s Space) AssertNotExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(filepath.Join(s.Dir, path))
	assert.True(s.t, os.IsNotExist(err))
}
