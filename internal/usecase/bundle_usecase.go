package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"starlinkwifi/internal/domain/entity"
	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/internal/infrastructure/notification"
	"starlinkwifi/pkg/errors"
)

type BundleUseCase struct {
	store      repository.Store
	notifier   Notifier
	adminEmail string
}

func NewBundleUseCase(store repository.Store, notifier Notifier, adminEmail string) *BundleUseCase {
	return &BundleUseCase{
		store:      store,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

type UpsertBundleInput struct {
	Name     string
	Price    float64
	Features []string
	Visible  bool
}

// UpsertBundle patches the existing record for the slug or creates one with
// the slug as id, so a slug can never map to two records. The read-then-write
// is not atomic; concurrent writers resolve last-writer-wins.
func (uc *BundleUseCase) UpsertBundle(ctx context.Context, slug string, input UpsertBundleInput) (*entity.Bundle, error) {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Price <= 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, errors.Validation(missing...)
	}
	if !entity.ValidBundleSlug(slug) {
		return nil, errors.BadRequest(
			fmt.Sprintf("unknown bundle %q, expected one of: %s", slug, strings.Join(entity.BundleSlugs, ", ")), nil)
	}

	fields := map[string]interface{}{
		"name":       input.Name,
		"price":      input.Price,
		"features":   input.Features,
		"visible":    input.Visible,
		"updated_at": time.Now().UTC(),
	}

	var record *entity.Record
	_, err := uc.store.Get(ctx, repository.CollectionBundles, slug)
	switch {
	case err == nil:
		record, err = uc.store.Patch(ctx, repository.CollectionBundles, slug, fields)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, "NOT_FOUND"):
		fields["id"] = slug
		record, err = uc.store.Insert(ctx, repository.CollectionBundles, fields)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	bundle := entity.BundleFromRecord(record)

	if uc.notifier != nil {
		uc.notifier.Enqueue(notification.Notification{
			Channel:   notification.ChannelEmail,
			Recipient: uc.adminEmail,
			Subject:   "Bundle Updated",
			Template:  notification.TemplateAdmin,
			Body:      bundleUpdateBody(bundle),
		})
	}

	return bundle, nil
}

func (uc *BundleUseCase) ListBundles(ctx context.Context, includeHidden bool) ([]*entity.Bundle, error) {
	opts := repository.ListOptions{
		OrderBy: "price",
	}
	if !includeHidden {
		opts.Filter = map[string]interface{}{"visible": true}
	}

	records, err := uc.store.List(ctx, repository.CollectionBundles, opts)
	if err != nil {
		return nil, err
	}

	bundles := make([]*entity.Bundle, 0, len(records))
	for _, record := range records {
		bundles = append(bundles, entity.BundleFromRecord(record))
	}
	return bundles, nil
}

func (uc *BundleUseCase) ToggleVisibility(ctx context.Context, slug string) (*entity.Bundle, error) {
	record, err := uc.store.Get(ctx, repository.CollectionBundles, slug)
	if err != nil {
		return nil, err
	}

	patched, err := uc.store.Patch(ctx, repository.CollectionBundles, slug, map[string]interface{}{
		"visible":    !record.Bool("visible"),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return entity.BundleFromRecord(patched), nil
}

func (uc *BundleUseCase) DeleteBundle(ctx context.Context, slug string) error {
	return uc.store.Remove(ctx, repository.CollectionBundles, slug)
}

func bundleUpdateBody(b *entity.Bundle) string {
	var features strings.Builder
	for _, f := range b.Features {
		features.WriteString("<li>" + html.EscapeString(f) + "</li>")
	}

	return fmt.Sprintf(`<h2>Bundle Information Updated</h2>
<p><strong>Bundle:</strong> %s</p>
<p><strong>Name:</strong> %s</p>
<p><strong>Price:</strong> KSh %.2f</p>
<p><strong>Features:</strong></p>
<ul>%s</ul>
<p><small>Updated at: %s</small></p>`,
		html.EscapeString(b.ID),
		html.EscapeString(b.Name),
		b.Price,
		features.String(),
		b.UpdatedAt.Format(time.RFC1123))
}
