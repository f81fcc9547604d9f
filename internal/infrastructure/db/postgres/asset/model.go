package asset

import (
	"time"

	"github.com/google/uuid"
)

type (
	AssetVersion struct {
		ID   uint64
		UUID uuid.UUID
		Slot string

		RemoteRef   string
		URL         string
		PreviewURL  string
		SizeBytes   uint64
		ContentType string

		IsActive   bool
		UploadedAt time.Time
	}
	AssetVersions []*AssetVersion
)
