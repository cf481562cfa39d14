package ports

import (
	"context"
	"io"
)

// UploadedFile representa um arquivo recebido em um upload multipart.
// O core nunca interpreta os bytes: apenas repassa ao storage e guarda o path.
type UploadedFile struct {
	Name    string // nome original do arquivo
	Size    int64
	Content io.Reader
}

// FileStorage define o colaborador de armazenamento de arquivos.
// Store grava o arquivo e retorna um path estável (ex: /storage/properties/...).
type FileStorage interface {
	Store(ctx context.Context, dir string, file UploadedFile) (string, error)
	Delete(ctx context.Context, path string) error
}
