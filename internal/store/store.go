package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sizetrack/sizetrack-go/internal/history"
)

// CorruptStoreError reports a history file whose content does not parse.
// Recovery is a user decision: the file must be removed manually.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("size history at %s is not valid: %v (remove the file manually to start over)", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

// Load reads the history file at path. A missing file is created with the
// empty-history representation and loaded as empty. Unparseable content
// fails with CorruptStoreError.
func Load(path string) (history.History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			empty := history.History{}
			if err := Save(path, empty); err != nil {
				return nil, err
			}
			return empty, nil
		}
		return nil, err
	}

	var h history.History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, &CorruptStoreError{Path: path, Err: err}
	}
	return h, nil
}

// Save serializes the whole history and replaces the file at path in a
// single rename, so a failed write never leaves partial content behind.
func Save(path string, h history.History) error {
	if h == nil {
		h = history.History{}
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
