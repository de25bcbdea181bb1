package rootFind

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindRoot(t *testing.T) {
	root := filepath.FromSlash("/home/user/Sync")
	marker := func(dir string) string {
		return filepath.Join(dir, ".stfolder")
	}

	t.Run("カレントディレクトリがルートの場合", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		fileRepo := NewMockFileRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return(root, nil)
		fileRepo.EXPECT().IsDir(marker(root)).Return(true)

		actual, err := NewRootFindService(fileRepo).FindRoot()
		assert.NoError(t, err)
		assert.Equal(t, root, actual.Dir)
		assert.Equal(t, root, actual.WorkDir)
		assert.Equal(t, string(filepath.Separator), actual.Prefix)
	})

	t.Run("祖先ディレクトリがルートとして見つかること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		workDir := filepath.Join(root, "sub", "dir")

		fileRepo := NewMockFileRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return(workDir, nil)
		fileRepo.EXPECT().IsDir(marker(workDir)).Return(false)
		fileRepo.EXPECT().IsDir(marker(filepath.Join(root, "sub"))).Return(false)
		fileRepo.EXPECT().IsDir(marker(root)).Return(true)

		actual, err := NewRootFindService(fileRepo).FindRoot()
		assert.NoError(t, err)
		assert.Equal(t, root, actual.Dir)
		assert.Equal(t, filepath.FromSlash("/sub/dir"), actual.Prefix)

		// Prefix appended to the root reproduces the working directory.
		assert.Equal(t, workDir, filepath.Join(actual.Dir, actual.Prefix))
	})

	t.Run("最も近い祖先が選ばれること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		nested := filepath.Join(root, "nested")
		workDir := filepath.Join(nested, "a")

		fileRepo := NewMockFileRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return(workDir, nil)
		fileRepo.EXPECT().IsDir(marker(workDir)).Return(false)
		fileRepo.EXPECT().IsDir(marker(nested)).Return(true)

		actual, err := NewRootFindService(fileRepo).FindRoot()
		assert.NoError(t, err)
		assert.Equal(t, nested, actual.Dir)
		assert.Equal(t, filepath.FromSlash("/a"), actual.Prefix)
	})

	t.Run("マーカーが見つからない場合はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		fileRepo := NewMockFileRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return(filepath.Join(root, "sub"), nil)
		fileRepo.EXPECT().IsDir(gomock.Any()).Return(false).MinTimes(1)

		_, err := NewRootFindService(fileRepo).FindRoot()
		assert.ErrorIs(t, err, ErrNotInSyncFolder)
	})

	t.Run("作業ディレクトリが取得できない場合はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		cause := errors.New("no such file or directory")
		fileRepo := NewMockFileRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return("", cause)

		_, err := NewRootFindService(fileRepo).FindRoot()

		var wdErr WorkingDirectoryError
		assert.ErrorAs(t, err, &wdErr)
		assert.ErrorIs(t, err, cause)
		assert.True(t, strings.HasPrefix(err.Error(), "can't determine current working directory"))
	})
}
