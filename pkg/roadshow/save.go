package roadshow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SavedName returns the timestamped file name used by Save.
func (r *Result) SavedName() string {
	base := strings.TrimSuffix(r.BookName, filepath.Ext(r.BookName))
	return fmt.Sprintf("%s_%s.xlsx", base, r.created.Format("20060102-150405"))
}

// Save writes the workbook into dir under SavedName and returns its path.
// Failures are *SaveError; r stays usable for preview or download either way.
// A failed save leaves no partial file at path.
func (r *Result) Save(dir string) (string, error) {
	path := filepath.Join(dir, r.SavedName())

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &SaveError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".roadshow-*.xlsx")
	if err != nil {
		return "", &SaveError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &SaveError{Path: path, Err: err}
	}
	if _, err := tmp.Write(r.data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &SaveError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &SaveError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", &SaveError{Path: path, Err: err}
	}

	return path, nil
}
