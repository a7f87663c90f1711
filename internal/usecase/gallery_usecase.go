package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"strings"
	"time"

	"starlinkwifi/internal/domain/entity"
	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/internal/infrastructure/notification"
	"starlinkwifi/pkg/errors"
	"starlinkwifi/pkg/logger"
)

const maxImageSize = 5 << 20 // 5 MiB

type GalleryUseCase struct {
	store      repository.Store
	objects    ObjectStorage
	notifier   Notifier
	adminEmail string
}

func NewGalleryUseCase(store repository.Store, objects ObjectStorage, notifier Notifier, adminEmail string) *GalleryUseCase {
	return &GalleryUseCase{
		store:      store,
		objects:    objects,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

type UploadImageInput struct {
	Title       string
	Description string
	Category    string
	Filename    string
	Type        string
	Data        []byte
}

// UploadImage stores the bytes and the record. With object storage configured
// the URL points at the bucket; without it the image is embedded as a data
// URI. Either way downstream code only ever sees the single url field.
func (uc *GalleryUseCase) UploadImage(ctx context.Context, input UploadImageInput) (*entity.GalleryImage, error) {
	var missing []string
	if input.Filename == "" {
		missing = append(missing, "filename")
	}
	if input.Type == "" {
		missing = append(missing, "type")
	}
	if len(input.Data) == 0 {
		missing = append(missing, "data")
	}
	if len(missing) > 0 {
		return nil, errors.Validation(missing...)
	}

	if !strings.HasPrefix(input.Type, "image/") {
		return nil, errors.BadRequest("only image uploads are allowed", nil)
	}
	if len(input.Data) > maxImageSize {
		return nil, errors.BadRequest("image exceeds the 5 MiB limit", nil)
	}

	category := input.Category
	if category == "" {
		category = "general"
	}

	var url string
	if uc.objects != nil {
		uploaded, err := uc.objects.UploadImage(ctx, bytes.NewReader(input.Data), input.Type)
		if err != nil {
			return nil, errors.Transport("failed to upload image", err)
		}
		url = uploaded
	} else {
		url = fmt.Sprintf("data:%s;base64,%s", input.Type, base64.StdEncoding.EncodeToString(input.Data))
	}

	record, err := uc.store.Insert(ctx, repository.CollectionGallery, map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"category":    category,
		"url":         url,
		"filename":    input.Filename,
		"size":        len(input.Data),
		"type":        input.Type,
		"visible":     true,
	})
	if err != nil {
		return nil, err
	}

	image := entity.GalleryImageFromRecord(record)

	if uc.notifier != nil {
		uc.notifier.Enqueue(notification.Notification{
			Channel:   notification.ChannelEmail,
			Recipient: uc.adminEmail,
			Subject:   "New Image Uploaded to Gallery",
			Template:  notification.TemplateAdmin,
			Body:      imageUploadBody(image),
		})
	}

	return image, nil
}

func (uc *GalleryUseCase) ListImages(ctx context.Context, category string, includeHidden bool, limit int) ([]*entity.GalleryImage, error) {
	filter := map[string]interface{}{}
	if !includeHidden {
		filter["visible"] = true
	}
	if category != "" && category != "all" {
		filter["category"] = category
	}

	records, err := uc.store.List(ctx, repository.CollectionGallery, repository.ListOptions{
		Filter:  filter,
		OrderBy: "created_at",
		Desc:    true,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	images := make([]*entity.GalleryImage, 0, len(records))
	for _, record := range records {
		images = append(images, entity.GalleryImageFromRecord(record))
	}
	return images, nil
}

func (uc *GalleryUseCase) ToggleVisibility(ctx context.Context, id string) (*entity.GalleryImage, error) {
	record, err := uc.store.Get(ctx, repository.CollectionGallery, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"visible": !record.Bool("visible")}
	if record.Bool("visible") {
		fields["hidden_at"] = time.Now().UTC()
	} else {
		fields["hidden_at"] = nil
	}

	patched, err := uc.store.Patch(ctx, repository.CollectionGallery, id, fields)
	if err != nil {
		return nil, err
	}
	return entity.GalleryImageFromRecord(patched), nil
}

// DeleteImage removes the record first and then the stored object. An object
// delete failure is logged, not surfaced: the record is already gone.
func (uc *GalleryUseCase) DeleteImage(ctx context.Context, id string) error {
	record, err := uc.store.Get(ctx, repository.CollectionGallery, id)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}

	if err := uc.store.Remove(ctx, repository.CollectionGallery, id); err != nil {
		return err
	}

	url := record.String("url")
	if uc.objects != nil && strings.HasPrefix(url, "https://") {
		if err := uc.objects.DeleteByURL(ctx, url); err != nil {
			logger.Warn("could not delete stored object for image %s: %v", id, err)
		}
	}

	return nil
}

func imageUploadBody(img *entity.GalleryImage) string {
	return fmt.Sprintf(`<h2>New Image Added to Gallery</h2>
<p><strong>Title:</strong> %s</p>
<p><strong>Category:</strong> %s</p>
<p><strong>File:</strong> %s</p>
<p><strong>Size:</strong> %.2f MB</p>
<p><small>Uploaded at: %s</small></p>`,
		html.EscapeString(img.Title),
		html.EscapeString(img.Category),
		html.EscapeString(img.Filename),
		float64(img.Size)/1024/1024,
		img.CreatedAt.Format(time.RFC1123))
}
