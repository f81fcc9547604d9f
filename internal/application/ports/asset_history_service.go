package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"asset-history-api/internal/domain/asset"
	"asset-history-api/internal/domain/owner"
)

// ProgressFunc observes transfer progress as a percentage in [0,100]. It
// is never invoked after the upload's terminal outcome is delivered.
type ProgressFunc func(pct int)

type AssetHistoryService interface {
	UploadAsset(ctx context.Context, ownerUUID owner.UUID, slot asset.Slot, in *multipart.FileHeader, onProgress ProgressFunc) (*asset.AssetRecord, error)
	ListHistory(ctx context.Context, ownerUUID owner.UUID, slot asset.Slot, limit int) (asset.AssetRecords, error)
	ActivateVersion(ctx context.Context, ownerUUID owner.UUID, slot asset.Slot, versionUUID uuid.UUID) (string, error)
	DerivedURLs(baseURL string, slot asset.Slot) map[string]string
	IsConfigured() bool
}
