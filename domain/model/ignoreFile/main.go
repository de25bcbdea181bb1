package ignoreFile

import (
	"github.com/t-kuni/stignore/domain/repository/file"
	"path/filepath"
)

const (
	// MarkerDir is the subdirectory Syncthing creates at the root of every folder.
	MarkerDir = ".stfolder"
	// Primary is the per-device ignore file read by Syncthing.
	Primary = ".stignore"
	// Secondary is the ignore file kept in sync across devices and pulled in with #include.
	Secondary = ".stignore_sync"

	IncludeDirective = "#include"
	CommentMarker    = "//"
)

type Opener interface {
	OpenFile(path string) (file.File, error)
}

// Handle is either an unopened path or an opened file. Open moves it from
// the first state to the second, exactly once.
type Handle struct {
	path   string
	opener Opener
	file   file.File
}

func NewHandle(opener Opener, path string) *Handle {
	return &Handle{
		path:   path,
		opener: opener,
	}
}

func PrimaryIn(opener Opener, rootDir string) *Handle {
	return NewHandle(opener, filepath.Join(rootDir, Primary))
}

func SecondaryIn(opener Opener, rootDir string) *Handle {
	return NewHandle(opener, filepath.Join(rootDir, Secondary))
}

func (h *Handle) Path() string {
	return h.path
}

func (h *Handle) IsOpen() bool {
	return h.file != nil
}

// Open returns the opened file, opening (and creating) it on first use.
func (h *Handle) Open() (file.File, error) {
	if h.file != nil {
		return h.file, nil
	}

	f, err := h.opener.OpenFile(h.path)
	if err != nil {
		return nil, err
	}
	h.file = f
	return f, nil
}

// Close releases the file if it was opened. The handle stays usable and
// reopens on the next Open.
func (h *Handle) Close() error {
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	return err
}
