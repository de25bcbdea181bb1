package file

import (
	"github.com/spf13/afero"
	"github.com/t-kuni/stignore/domain/repository/file"
	"github.com/t-kuni/stignore/util/path"
	"os"
)

type FileRepository struct {
	fs afero.Fs
}

func NewFileRepository() *FileRepository {
	return NewFileRepositoryWithFs(afero.NewOsFs())
}

// NewFileRepositoryWithFs is used by tests to run against afero.NewMemMapFs().
func NewFileRepositoryWithFs(fs afero.Fs) *FileRepository {
	return &FileRepository{fs: fs}
}

func (r *FileRepository) Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return path.Canonicalize(wd)
}

func (r *FileRepository) Read(path string) ([]byte, error) {
	return afero.ReadFile(r.fs, path)
}

func (r *FileRepository) IsDir(path string) bool {
	ok, err := afero.IsDir(r.fs, path)
	return err == nil && ok
}

func (r *FileRepository) IsFile(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (r *FileRepository) OpenFile(path string) (file.File, error) {
	return r.fs.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
}
