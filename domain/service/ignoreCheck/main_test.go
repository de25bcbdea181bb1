package ignoreCheck

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/stignore/domain/service/rootFind"
	fileRepo "github.com/t-kuni/stignore/infrastructure/repository/file"
	"testing"
)

func TestCheck(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/sync/.stfolder", 0755))
	require.NoError(t, fs.MkdirAll("/sync/sub/build", 0755))
	require.NoError(t, afero.WriteFile(fs, "/sync/.stignore", []byte(
		"// local patterns\n"+
			"(?d)*.tmp\n"+
			"/sub/build\n"+
			"#include .stignore_sync\n"+
			"#include missing\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/sync/.stignore_sync", []byte(
		"*.log\n"+
			"!keep.log\n"+
			"#include .stignore\n"), 0644))

	logger, _ := test.NewNullLogger()
	svc := NewIgnoreCheckService(fileRepo.NewFileRepositoryWithFs(fs), logger)

	root := rootFind.Root{Dir: "/sync", WorkDir: "/sync/sub", Prefix: "/sub"}
	results, err := svc.Check(root, []string{
		"a.tmp",
		"notes.txt",
		"server.log",
		"keep.log",
		"build/out.o",
		"/sync/sub/build",
		"/elsewhere/x.tmp",
		"..",
	})
	assert.NoError(t, err)
	require.Len(t, results, 8)

	assert.True(t, results[0].Ignored, "pattern with (?d) flag")
	assert.False(t, results[1].Ignored)
	assert.True(t, results[2].Ignored, "pattern from the included file")
	assert.False(t, results[3].Ignored, "negated pattern")
	assert.True(t, results[4].Ignored, "file inside an ignored directory")
	assert.True(t, results[5].Ignored, "absolute path")
	assert.True(t, results[6].Outside)
	assert.False(t, results[6].Ignored)
	assert.False(t, results[7].Outside, "the root itself")
	assert.False(t, results[7].Ignored)
}

func TestCheckWithoutIgnoreFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/sync/.stfolder", 0755))

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	svc := NewIgnoreCheckService(fileRepo.NewFileRepositoryWithFs(fs), logger)

	results, err := svc.Check(rootFind.Root{Dir: "/sync", WorkDir: "/sync", Prefix: "/"}, []string{"a.tmp"})
	assert.NoError(t, err)
	assert.False(t, results[0].Ignored)
	assert.NotEmpty(t, hook.AllEntries())

	exists, _ := afero.Exists(fs, "/sync/.stignore")
	assert.False(t, exists)
}

func TestToGitignore(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "foo", expected: "foo", ok: true},
		{input: "!foo", expected: "!foo", ok: true},
		{input: "(?d)!(?i)foo", expected: "!foo", ok: true},
		{input: "#hash", expected: `\#hash`, ok: true},
		{input: "#include x", ok: false},
		{input: "#include", ok: false},
		{input: "!", ok: false},
		{input: "!!", expected: "!!", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, ok := toGitignore(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
