package services

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-history-api/config"
	"asset-history-api/internal/domain/asset"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   h,
		Size:     size,
	}
}

func testPolicy() FilePolicy {
	return NewFilePolicy(config.History{
		AllowedTypes:     []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
		MaxFileSizeBytes: 5 << 20,
	})
}

func TestFilePolicy_Validate(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		name    string
		in      *multipart.FileHeader
		wantErr error
	}{
		{"nil file", nil, asset.ErrNoFile},
		{"empty file", fileHeader("a.png", "image/png", 0), asset.ErrNoFile},
		{"pdf rejected", fileHeader("doc.pdf", "application/pdf", 100), asset.ErrUnsupportedType},
		{"over limit", fileHeader("big.png", "image/png", (5<<20)+1), asset.ErrTooLarge},
		{"at limit ok", fileHeader("ok.png", "image/png", 5 << 20), nil},
		{"jpeg ok", fileHeader("ok.jpg", "image/jpeg", 1024), nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := p.Validate(tt.in)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFilePolicy_ErrorMessages(t *testing.T) {
	p := testPolicy()

	err := p.Validate(fileHeader("doc.pdf", "application/pdf", 100))
	require.Error(t, err)
	// rejection enumerates what the caller may send instead
	assert.Contains(t, err.Error(), "image/jpeg, image/png, image/webp, image/gif")

	err = p.Validate(fileHeader("big.png", "image/png", (5<<20)+1))
	require.Error(t, err)
	// limit surfaced in MB with one decimal
	assert.Contains(t, err.Error(), "5.0 MB")
}
