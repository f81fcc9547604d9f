package ports

import (
	"context"

	"asset-history-api/internal/domain/asset"
	"asset-history-api/internal/infrastructure/mediakit"
)

type CredentialSigner interface {
	IssueCredential() (*asset.UploadCredential, error)
	PublicKey() string
}

type Uploader interface {
	Upload(ctx context.Context, req mediakit.UploadRequest, onProgress func(pct int)) (*asset.RemoteAssetInfo, error)
	DeleteFile(ctx context.Context, remoteRef string) error
	IsConfigured() bool
}

type URLBuilder interface {
	Derive(baseURL string, slot asset.Slot) map[string]string
}
