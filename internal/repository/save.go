package repository

import "context"

// SaveRepository stores encoded games under a name. A save is always read and written whole.
type SaveRepository interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}
