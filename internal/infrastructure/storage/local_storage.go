package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/realestate-backend/internal/domain/ports"
)

// LocalStorage implementa ports.FileStorage gravando em disco local.
// Paths retornados usam o prefixo público configurado (ex: /storage/...),
// nunca o caminho físico.
type LocalStorage struct {
	basePath  string
	publicURL string
}

// NewLocalStorage cria um novo LocalStorage
func NewLocalStorage(basePath, publicURL string) *LocalStorage {
	return &LocalStorage{
		basePath:  basePath,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

func (s *LocalStorage) Store(ctx context.Context, dir string, file ports.UploadedFile) (string, error) {
	targetDir := filepath.Join(s.basePath, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir: %w", err)
	}

	// Nome único: timestamp + sufixo aleatório, preservando a extensão
	ext := filepath.Ext(file.Name)
	name := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString()[:8], ext)

	dst, err := os.Create(filepath.Join(targetDir, name)) //nolint:gosec
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file.Content); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.publicURL + "/" + dir + "/" + name, nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	rel := strings.TrimPrefix(path, s.publicURL+"/")
	if rel == path {
		// Path fora do prefixo público não é nosso
		return nil
	}

	err := os.Remove(filepath.Join(s.basePath, filepath.Clean(rel)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
