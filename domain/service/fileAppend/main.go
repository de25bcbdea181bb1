package fileAppend

import (
	"bytes"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/stignore/domain/model/ignoreFile"
	"io"
)

type FileAppendService struct {
	lineEnding string
}

func NewFileAppendService(lineEnding string) *FileAppendService {
	return &FileAppendService{
		lineEnding: lineEnding,
	}
}

// Append writes content at the end of the file behind h, first adding a line
// ending if the file doesn't already end with one.
func (s *FileAppendService) Append(h *ignoreFile.Handle, content string) error {
	f, err := h.Open()
	if err != nil {
		return eris.Wrapf(err, "failed to open %s", h.Path())
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return eris.Wrapf(err, "failed to seek %s", h.Path())
	}

	var tail []byte
	if n := int64(len(s.lineEnding)); size >= n {
		if _, err := f.Seek(-n, io.SeekEnd); err != nil {
			return eris.Wrapf(err, "failed to seek %s", h.Path())
		}
		tail = make([]byte, n)
		if _, err := io.ReadFull(f, tail); err != nil {
			return eris.Wrapf(err, "failed to read the end of %s", h.Path())
		}
	}

	if s.needsLineEnding(size, tail) {
		content = s.lineEnding + content
	}

	if _, err := io.WriteString(f, content); err != nil {
		return eris.Wrapf(err, "failed to write %s", h.Path())
	}
	return nil
}

// Preview returns what Append would leave in a file that currently holds existing.
func (s *FileAppendService) Preview(existing []byte, content string) string {
	size := int64(len(existing))

	var tail []byte
	if n := int64(len(s.lineEnding)); size >= n {
		tail = existing[size-n:]
	}

	if s.needsLineEnding(size, tail) {
		return string(existing) + s.lineEnding + content
	}
	return string(existing) + content
}

// needsLineEnding decides from the file size and its last len(lineEnding)
// bytes. tail is nil when the file is shorter than a line ending.
func (s *FileAppendService) needsLineEnding(size int64, tail []byte) bool {
	switch {
	case size == 0:
		return false
	case tail == nil:
		return true
	}
	return !bytes.Equal(tail, []byte(s.lineEnding))
}
