package syncInclude

import (
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/stignore/domain/service/fileAppend"
	"github.com/t-kuni/stignore/domain/service/targetResolve"
	fileRepo "github.com/t-kuni/stignore/infrastructure/repository/file"
	"testing"
)

func newService(fs afero.Fs) *SyncIncludeService {
	repo := fileRepo.NewFileRepositoryWithFs(fs)
	return NewSyncIncludeService(
		repo,
		targetResolve.NewTargetResolveService(repo),
		fileAppend.NewFileAppendService("\n"),
		"\n",
	)
}

func TestLink(t *testing.T) {
	t.Run("includeが追加されstignore_syncが作成されること", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/sync/.stignore", []byte("*.tmp"), 0644))

		added, err := newService(fs).Link("/sync")
		assert.NoError(t, err)
		assert.True(t, added)

		content, err := afero.ReadFile(fs, "/sync/.stignore")
		assert.NoError(t, err)
		assert.Equal(t, "*.tmp\n#include .stignore_sync\n", string(content))

		exists, _ := afero.Exists(fs, "/sync/.stignore_sync")
		assert.True(t, exists)
	})

	t.Run("既存のstignore_syncの内容が保持されること", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/sync/.stignore_sync", []byte("*.bak\n"), 0644))

		added, err := newService(fs).Link("/sync")
		assert.NoError(t, err)
		assert.True(t, added)

		content, err := afero.ReadFile(fs, "/sync/.stignore")
		assert.NoError(t, err)
		assert.Equal(t, "#include .stignore_sync\n", string(content))

		content, err = afero.ReadFile(fs, "/sync/.stignore_sync")
		assert.NoError(t, err)
		assert.Equal(t, "*.bak\n", string(content))
	})

	t.Run("2回目の実行では何も追加されないこと", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		svc := newService(fs)

		added, err := svc.Link("/sync")
		assert.NoError(t, err)
		assert.True(t, added)

		added, err = svc.Link("/sync")
		assert.NoError(t, err)
		assert.False(t, added)

		content, err := afero.ReadFile(fs, "/sync/.stignore")
		assert.NoError(t, err)
		assert.Equal(t, "#include .stignore_sync\n", string(content))
	})
}
