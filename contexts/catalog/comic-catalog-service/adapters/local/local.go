package localadapter

import (
	"context"

	"inkwell/contexts/catalog/comic-catalog-service/ports"
	viewapplication "inkwell/contexts/reader-experience/view-tracking-service/application"
)

// ViewTrackingInitializer bridges comic creation to the view-tracking module
// so every comic starts with a zeroed view record.
type ViewTrackingInitializer struct {
	Views viewapplication.Service
}

func (a ViewTrackingInitializer) CreateViewRecord(ctx context.Context, comicID string) error {
	_, err := a.Views.CreateViewRecord(ctx, comicID)
	return err
}

var _ ports.ViewInitializer = ViewTrackingInitializer{}
