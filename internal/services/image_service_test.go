package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	apperrors "github.com/rafabene/realestate-backend/internal/domain/errors"
	"github.com/rafabene/realestate-backend/internal/domain/ports"
	"github.com/rafabene/realestate-backend/internal/domain/repositories"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}

// fakePropertyRepo implementa repositories.PropertyRepository em memória
// apenas no necessário para os testes de ImageService.
type fakePropertyRepo struct {
	images      map[uint]entities.PropertyImage
	deletedRows []uint
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{images: map[uint]entities.PropertyImage{}}
}

func (f *fakePropertyRepo) Create(ctx context.Context, property *entities.Property, uploads []ports.UploadedFile) error {
	return nil
}

func (f *fakePropertyRepo) List(ctx context.Context, filters repositories.PropertyFilters) (*repositories.PropertyPage, error) {
	return &repositories.PropertyPage{CurrentPage: 1, LastPage: 1}, nil
}

func (f *fakePropertyRepo) FindByID(ctx context.Context, id uint) (*entities.Property, error) {
	return nil, nil
}

func (f *fakePropertyRepo) Update(ctx context.Context, id uint, changes repositories.PropertyChanges) (*entities.Property, error) {
	return nil, nil
}

func (f *fakePropertyRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return false, nil
}

func (f *fakePropertyRepo) UploadImages(ctx context.Context, propertyID uint, uploads []ports.UploadedFile) (*entities.Property, error) {
	return nil, nil
}

func (f *fakePropertyRepo) FindImage(ctx context.Context, imageID uint) (*entities.PropertyImage, error) {
	image, ok := f.images[imageID]
	if !ok {
		return nil, nil
	}
	return &image, nil
}

func (f *fakePropertyRepo) SetPrimaryImage(ctx context.Context, imageID uint) (bool, error) {
	_, ok := f.images[imageID]
	return ok, nil
}

func (f *fakePropertyRepo) RemovePrimaryImage(ctx context.Context, imageID uint) (bool, error) {
	_, ok := f.images[imageID]
	return ok, nil
}

func (f *fakePropertyRepo) MoveImageUp(ctx context.Context, imageID uint) (bool, error) {
	_, ok := f.images[imageID]
	return ok, nil
}

func (f *fakePropertyRepo) MoveImageDown(ctx context.Context, imageID uint) (bool, error) {
	_, ok := f.images[imageID]
	return ok, nil
}

func (f *fakePropertyRepo) DeleteImage(ctx context.Context, imageID uint) (bool, error) {
	if _, ok := f.images[imageID]; !ok {
		return false, nil
	}
	delete(f.images, imageID)
	f.deletedRows = append(f.deletedRows, imageID)
	return true, nil
}

// fakeStorage registra os paths removidos
type fakeStorage struct {
	deleted   []string
	deleteErr error
}

func (f *fakeStorage) Store(ctx context.Context, dir string, file ports.UploadedFile) (string, error) {
	return "", nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, path)
	return nil
}

func TestImageService_DeleteImage(t *testing.T) {
	ctx := context.Background()

	t.Run("remove o registro e o arquivo armazenado", func(t *testing.T) {
		repo := newFakePropertyRepo()
		repo.images[7] = entities.PropertyImage{
			ID:         7,
			PropertyID: 1,
			ImagePath:  "/storage/properties/casa.jpg",
		}
		storage := &fakeStorage{}
		service := NewImageService(repo, storage, noopLogger{})

		if err := service.DeleteImage(ctx, 7); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if len(repo.deletedRows) != 1 || repo.deletedRows[0] != 7 {
			t.Errorf("esperava remoção do registro 7, obteve %v", repo.deletedRows)
		}
		if len(storage.deleted) != 1 || storage.deleted[0] != "/storage/properties/casa.jpg" {
			t.Errorf("esperava remoção do arquivo da imagem, obteve %v", storage.deleted)
		}
	})

	t.Run("imagem inexistente retorna erro de não encontrado", func(t *testing.T) {
		repo := newFakePropertyRepo()
		storage := &fakeStorage{}
		service := NewImageService(repo, storage, noopLogger{})

		err := service.DeleteImage(ctx, 99)
		if !errors.Is(err, apperrors.ErrImageNotFound) {
			t.Errorf("esperava ErrImageNotFound, obteve: %v", err)
		}
		if len(storage.deleted) != 0 {
			t.Error("nenhum arquivo deveria ser removido para imagem inexistente")
		}
	})

	t.Run("falha ao remover o arquivo não derruba a operação", func(t *testing.T) {
		repo := newFakePropertyRepo()
		repo.images[3] = entities.PropertyImage{
			ID:        3,
			ImagePath: "/storage/properties/apto.jpg",
		}
		storage := &fakeStorage{deleteErr: errors.New("disk gone")}
		service := NewImageService(repo, storage, noopLogger{})

		// O registro já foi removido: a falha no arquivo é apenas logada
		if err := service.DeleteImage(ctx, 3); err != nil {
			t.Errorf("esperava sucesso mesmo com falha no arquivo, obteve: %v", err)
		}
		if len(repo.deletedRows) != 1 {
			t.Errorf("esperava remoção do registro, obteve %v", repo.deletedRows)
		}
	})
}
