//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package file

import "io"

// File is an opened ignore file. afero.File and *os.File satisfy it.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

type Repository interface {
	// Getwd returns the working directory with symlinks resolved.
	Getwd() (string, error)
	Read(path string) ([]byte, error)
	IsDir(path string) bool
	IsFile(path string) bool
	// OpenFile opens path for reading and writing, creating it when missing.
	OpenFile(path string) (File, error)
}
