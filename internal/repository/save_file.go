package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/stones/internal/apperror"
)

type fileSave struct {
	dir string
}

// NewFileSaveRepository - stores saves as files. Relative names are resolved under dir.
func NewFileSaveRepository(dir string) SaveRepository {
	return &fileSave{
		dir: dir,
	}
}

// Save - writes data to a temporary file next to the target and renames it into place,
// so readers see either the previous or the new content.
func (that *fileSave) Save(_ context.Context, name string, data []byte) error {
	path := that.path(name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: could not create save directory: %w", apperror.ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".save-*")
	if err != nil {
		return fmt.Errorf("%w: could not create temp file: %w", apperror.ErrPersistence, err)
	}

	if err = writeAndClose(tmp, data); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: could not write save: %w", apperror.ErrPersistence, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: could not replace save: %w", apperror.ErrPersistence, err)
	}

	return nil
}

func (that *fileSave) Load(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(that.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: could not read save: %w", apperror.ErrPersistence, err)
	}

	return data, nil
}

func (that *fileSave) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(that.dir, name)
}

func writeAndClose(file *os.File, data []byte) error {
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
