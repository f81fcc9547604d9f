package services

import (
	"fmt"
	"mime/multipart"
	"strings"

	"asset-history-api/config"
	"asset-history-api/internal/domain/asset"
)

// FilePolicy screens upload metadata before any credential is issued, so
// invalid input never consumes a single-use credential. Pure: no side
// effects, no I/O.
type FilePolicy struct {
	allowedTypes     []string
	maxFileSizeBytes int64
}

func NewFilePolicy(cfg config.History) FilePolicy {
	return FilePolicy{
		allowedTypes:     cfg.AllowedTypes,
		maxFileSizeBytes: cfg.MaxFileSizeBytes,
	}
}

func (p FilePolicy) Validate(in *multipart.FileHeader) error {
	if in == nil || in.Size == 0 {
		return asset.ErrNoFile
	}

	contentType := in.Header.Get("Content-Type")
	if !p.typeAllowed(contentType) {
		return fmt.Errorf("%w: %q (accepted: %s)",
			asset.ErrUnsupportedType, contentType, strings.Join(p.allowedTypes, ", "))
	}

	if in.Size > p.maxFileSizeBytes {
		return fmt.Errorf("%w: limit is %.1f MB",
			asset.ErrTooLarge, float64(p.maxFileSizeBytes)/(1<<20))
	}

	return nil
}

func (p FilePolicy) typeAllowed(contentType string) bool {
	for _, t := range p.allowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
