package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileRecipeState keeps the collection in a local JSON file.
type FileRecipeState struct {
	FilePath string
}

func NewFileRecipeState(filePath string) *FileRecipeState {
	return &FileRecipeState{FilePath: filePath}
}

func (r *FileRecipeState) Load(ctx context.Context) ([]byte, error) {
	return os.ReadFile(r.FilePath)
}

// Save writes to a temporary file in the same directory and renames it
// over the target so readers never see a partial document.
func (r *FileRecipeState) Save(ctx context.Context, data []byte) error {
	dir := filepath.Dir(r.FilePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create recipes dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.FilePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp recipes file: %w", err)
	}
	defer os.Remove(tmp.Name()) // nolint: errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write recipes: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close recipes file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.FilePath); err != nil {
		return fmt.Errorf("replace recipes file: %w", err)
	}
	return nil
}
