package mediakit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-history-api/config"
	"asset-history-api/internal/domain/asset"
)

// transferTimeout is the hard ceiling for one transfer attempt.
const transferTimeout = 120 * time.Second

const systemTag = "asset-history"

type (
	Uploader struct {
		client *http.Client
		cfg    config.MediaKit
		log    *zap.Logger
	}

	// UploadRequest carries everything one transfer attempt needs. The
	// credential is consumed by this attempt and must not be reused.
	UploadRequest struct {
		OwnerRef    string // owner uuid, or "anonymous"
		Slot        asset.Slot
		FileName    string
		ContentType string
		Body        io.Reader
		SizeBytes   int64
		Credential  *asset.UploadCredential
	}

	// uploadResponse is the remote store's success payload.
	uploadResponse struct {
		FileID       string `json:"fileId"`
		Name         string `json:"name"`
		URL          string `json:"url"`
		ThumbnailURL string `json:"thumbnailUrl"`
		Size         uint64 `json:"size"`
		FileType     string `json:"fileType"`
	}

	errorResponse struct {
		Message string `json:"message"`
	}
)

func NewUploader(cfg config.MediaKit, logger *zap.Logger) *Uploader {
	return &Uploader{
		client: &http.Client{},
		cfg:    cfg,
		log:    logger,
	}
}

// Upload performs one multipart transfer to the remote store.
//
// onProgress receives percentages in [0,100], strictly before Upload
// returns; the buffered body is only read inside the HTTP round trip, so a
// terminal outcome can never be followed by a progress call. Cancelling ctx
// resolves the attempt with ErrCancelled; exceeding the 120s ceiling with
// ErrTimedOut. Exactly one terminal outcome is returned per invocation.
func (u *Uploader) Upload(ctx context.Context, req UploadRequest, onProgress func(pct int)) (*asset.RemoteAssetInfo, error) {
	if u.cfg.UploadEndpoint == "" || u.cfg.PublicKey == "" {
		return nil, asset.ErrMissingCredentials
	}
	if req.Credential == nil {
		return nil, asset.ErrSigningUnavailable
	}

	body, contentType, err := u.encodeForm(req)
	if err != nil {
		return nil, fmt.Errorf("encode multipart form: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, transferTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.cfg.UploadEndpoint, &progressReader{
		r:          bytes.NewReader(body),
		total:      int64(len(body)),
		onProgress: onProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.ContentLength = int64(len(body))

	resp, err := u.client.Do(httpReq)
	if err != nil {
		return nil, u.terminalErr(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, u.terminalErr(ctx, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var remote errorResponse
		_ = json.Unmarshal(raw, &remote)
		if remote.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", asset.ErrTransferFailed, resp.StatusCode, remote.Message)
		}
		return nil, fmt.Errorf("%w: status %d", asset.ErrTransferFailed, resp.StatusCode)
	}

	var out uploadResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", asset.ErrBadResponse, err)
	}
	if out.FileID == "" || out.URL == "" {
		return nil, fmt.Errorf("%w: missing fileId or url", asset.ErrBadResponse)
	}

	info := &asset.RemoteAssetInfo{
		RemoteRef:   out.FileID,
		URL:         out.URL,
		PreviewURL:  out.ThumbnailURL,
		SizeBytes:   out.Size,
		ContentType: req.ContentType,
	}
	if info.SizeBytes == 0 {
		info.SizeBytes = uint64(req.SizeBytes)
	}
	if info.PreviewURL == "" {
		info.PreviewURL = out.URL
	}

	return info, nil
}

// encodeForm buffers the whole multipart body. Uploads are capped at a few
// MiB by the file policy, so buffering keeps progress accounting exact and
// avoids a writer goroutine that could outlive the request.
func (u *Uploader) encodeForm(req UploadRequest) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"fileName":          destinationFileName(req.FileName),
		"publicKey":         u.cfg.PublicKey,
		"signature":         req.Credential.Signature,
		"expire":            strconv.FormatInt(req.Credential.ExpiresAt, 10),
		"token":             req.Credential.Token,
		"folder":            destinationFolder(req.Slot, req.OwnerRef),
		"tags":              fmt.Sprintf("%s,%s,%s", req.OwnerRef, req.Slot, systemTag),
		"useUniqueFileName": "false",
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	fw, err := w.CreateFormFile("file", req.FileName)
	if err != nil {
		return nil, "", err
	}
	if _, err = io.Copy(fw, req.Body); err != nil {
		return nil, "", err
	}
	if err = w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

// terminalErr classifies a failed round trip: caller cancellation wins over
// the transfer deadline, everything else is a transfer failure.
func (u *Uploader) terminalErr(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(ctx.Err(), context.Canceled):
		return asset.ErrCancelled
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w after %s", asset.ErrTimedOut, transferTimeout)
	default:
		return fmt.Errorf("%w: %v", asset.ErrTransferFailed, err)
	}
}

// destinationFileName keeps names collision resistant across concurrent
// uploads into the same folder.
func destinationFileName(original string) string {
	return uuid.NewString() + "-" + sanitizeFileName(original)
}

func destinationFolder(slot asset.Slot, ownerRef string) string {
	if ownerRef == "" {
		ownerRef = "anonymous"
	}
	return fmt.Sprintf("%ss/%s", slot, ownerRef)
}

type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	lastPct    int
	onProgress func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.onProgress != nil && p.total > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct != p.lastPct {
			p.lastPct = pct
			p.onProgress(pct)
		}
	}
	return n, err
}
