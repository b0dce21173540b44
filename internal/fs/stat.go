package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrNotExist reports a missing input path.
	ErrNotExist = errors.New("file does not exist")
	// ErrNotRegular reports a directory, device or other special file.
	ErrNotRegular = errors.New("not a regular file")
)

// Entry describes the file being previewed.
type Entry struct {
	Name     string
	FullPath string
	Size     int64
	Modified time.Time
	Mode     os.FileMode
}

// Ext returns the lower-case extension without the dot.
func (e Entry) Ext() string {
	return Extension(e.Name)
}

// Stat resolves path, follows symlinks and accepts only regular files.
func Stat(path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, ErrNotExist
		}
		return Entry{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return Entry{}, ErrNotRegular
	}

	full, err := filepath.Abs(path)
	if err != nil {
		full = path
	}
	return Entry{
		Name:     info.Name(),
		FullPath: full,
		Size:     info.Size(),
		Modified: info.ModTime(),
		Mode:     info.Mode(),
	}, nil
}
