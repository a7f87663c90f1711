package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "starlinkwifi/pkg/errors"
)

type fakeObjectStorage struct {
	uploads   int
	deleted   []string
	uploadErr error
}

func (f *fakeObjectStorage) UploadImage(ctx context.Context, file io.Reader, fileType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads++
	return "https://storage.googleapis.com/test-bucket/public/gallery/test.png", nil
}

func (f *fakeObjectStorage) DeleteByURL(ctx context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func pngUpload() UploadImageInput {
	return UploadImageInput{
		Title:    "Install",
		Category: "installations",
		Filename: "install.png",
		Type:     "image/png",
		Data:     []byte("not really a png"),
	}
}

func TestUploadImageWithObjectStorage(t *testing.T) {
	objects := &fakeObjectStorage{}
	uc := NewGalleryUseCase(newStore(t), objects, nil, "admin@starlinkwifi.com")

	image, err := uc.UploadImage(context.Background(), pngUpload())
	require.NoError(t, err)
	assert.Equal(t, 1, objects.uploads)
	assert.True(t, strings.HasPrefix(image.URL, "https://"))
	assert.True(t, image.Visible)
	assert.Equal(t, "installations", image.Category)
}

func TestUploadImageDataURIFallback(t *testing.T) {
	uc := NewGalleryUseCase(newStore(t), nil, nil, "admin@starlinkwifi.com")

	image, err := uc.UploadImage(context.Background(), pngUpload())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(image.URL, "data:image/png;base64,"))
}

func TestUploadImageValidation(t *testing.T) {
	uc := NewGalleryUseCase(newStore(t), nil, nil, "admin@starlinkwifi.com")
	ctx := context.Background()

	_, err := uc.UploadImage(ctx, UploadImageInput{})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	input := pngUpload()
	input.Type = "application/pdf"
	_, err = uc.UploadImage(ctx, input)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	input = pngUpload()
	input.Data = make([]byte, maxImageSize+1)
	_, err = uc.UploadImage(ctx, input)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestUploadImageStorageFailure(t *testing.T) {
	objects := &fakeObjectStorage{uploadErr: errors.New("bucket unreachable")}
	uc := NewGalleryUseCase(newStore(t), objects, nil, "admin@starlinkwifi.com")

	_, err := uc.UploadImage(context.Background(), pngUpload())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "TRANSPORT_ERROR"))

	// The failed upload never gets a record.
	images, listErr := uc.ListImages(context.Background(), "", true, 0)
	require.NoError(t, listErr)
	assert.Empty(t, images)
}

func TestListImagesCategoryAndVisibility(t *testing.T) {
	uc := NewGalleryUseCase(newStore(t), nil, nil, "admin@starlinkwifi.com")
	ctx := context.Background()

	first, err := uc.UploadImage(ctx, pngUpload())
	require.NoError(t, err)

	input := pngUpload()
	input.Category = "coverage"
	_, err = uc.UploadImage(ctx, input)
	require.NoError(t, err)

	_, err = uc.ToggleVisibility(ctx, first.ID)
	require.NoError(t, err)

	visible, err := uc.ListImages(ctx, "", false, 0)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "coverage", visible[0].Category)

	all, err := uc.ListImages(ctx, "all", true, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	installations, err := uc.ListImages(ctx, "installations", true, 0)
	require.NoError(t, err)
	require.Len(t, installations, 1)
	assert.Equal(t, first.ID, installations[0].ID)
}

func TestGalleryToggleVisibility(t *testing.T) {
	uc := NewGalleryUseCase(newStore(t), nil, nil, "admin@starlinkwifi.com")
	ctx := context.Background()

	image, err := uc.UploadImage(ctx, pngUpload())
	require.NoError(t, err)

	hidden, err := uc.ToggleVisibility(ctx, image.ID)
	require.NoError(t, err)
	assert.False(t, hidden.Visible)

	shown, err := uc.ToggleVisibility(ctx, image.ID)
	require.NoError(t, err)
	assert.True(t, shown.Visible)
}

func TestDeleteImageRemovesStoredObject(t *testing.T) {
	objects := &fakeObjectStorage{}
	uc := NewGalleryUseCase(newStore(t), objects, nil, "admin@starlinkwifi.com")
	ctx := context.Background()

	image, err := uc.UploadImage(ctx, pngUpload())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteImage(ctx, image.ID))
	require.Len(t, objects.deleted, 1)
	assert.Equal(t, image.URL, objects.deleted[0])

	// Unknown ids are treated as already deleted.
	require.NoError(t, uc.DeleteImage(ctx, image.ID))
	assert.Len(t, objects.deleted, 1)
}
