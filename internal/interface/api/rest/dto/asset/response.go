package asset

import (
	"time"

	"github.com/google/uuid"
)

type (
	AssetVersion struct {
		UUID        uuid.UUID `json:"uuid"`
		Slot        string    `json:"slot"`
		RemoteRef   string    `json:"remote_ref"`
		URL         string    `json:"url"`
		PreviewURL  string    `json:"preview_url"`
		SizeBytes   uint64    `json:"size_bytes"`
		ContentType string    `json:"content_type"`
		IsActive    bool      `json:"is_active"`
		UploadedAt  time.Time `json:"uploaded_at"`
	}
	AssetVersions []AssetVersion
	ResponseData  struct {
		Data AssetVersions `json:"data"`
	}
	ActivateResponse struct {
		URL string `json:"url"`
	}
	DerivedURLsResponse struct {
		Variants map[string]string `json:"variants"`
	}
	StatusResponse struct {
		Configured bool `json:"configured"`
	}
)
