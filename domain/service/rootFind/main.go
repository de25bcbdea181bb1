//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package rootFind

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/stignore/domain/model/ignoreFile"
	"path/filepath"
)

var ErrNotInSyncFolder = eris.New("current directory is not inside of a syncthing folder")

// WorkingDirectoryError is returned when the working directory can't be
// obtained or canonicalized.
type WorkingDirectoryError struct {
	Err error
}

func (err WorkingDirectoryError) Error() string {
	return "can't determine current working directory: " + err.Err.Error()
}

func (err WorkingDirectoryError) Unwrap() error {
	return err.Err
}

type RootFindService struct {
	fileRepository FileRepository
}

type FileRepository interface {
	Getwd() (string, error)
	IsDir(path string) bool
}

// Root is the synchronization root together with the position of the
// working directory inside it.
type Root struct {
	// Dir is the canonical folder root, the directory holding .stfolder.
	Dir string
	// WorkDir is the canonical working directory.
	WorkDir string
	// Prefix is WorkDir relative to Dir, rooted at a synthetic separator,
	// e.g. "/sub/dir", or "/" when WorkDir == Dir.
	Prefix string
}

func NewRootFindService(fileRepository FileRepository) *RootFindService {
	return &RootFindService{
		fileRepository: fileRepository,
	}
}

func (s *RootFindService) FindRoot() (Root, error) {
	workDir, err := s.fileRepository.Getwd()
	if err != nil {
		return Root{}, WorkingDirectoryError{Err: err}
	}

	currentDir := workDir
	for {
		if s.fileRepository.IsDir(filepath.Join(currentDir, ignoreFile.MarkerDir)) {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return Root{}, ErrNotInSyncFolder
		}
		currentDir = parentDir
	}

	rel, err := filepath.Rel(currentDir, workDir)
	if err != nil {
		return Root{}, eris.Wrap(err, "failed to get path relative to syncthing folder")
	}
	if rel == "." {
		rel = ""
	}

	return Root{
		Dir:     currentDir,
		WorkDir: workDir,
		Prefix:  string(filepath.Separator) + rel,
	}, nil
}
