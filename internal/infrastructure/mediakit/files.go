package mediakit

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"asset-history-api/internal/domain/asset"
)

// DeleteFile removes an object from the remote store. Used for advisory
// cleanup of pruned versions; callers treat failures as non-fatal.
func (u *Uploader) DeleteFile(ctx context.Context, remoteRef string) error {
	if u.cfg.APIEndpoint == "" || u.cfg.PrivateKey == "" {
		return asset.ErrMissingCredentials
	}

	url := fmt.Sprintf("%s/files/%s", u.cfg.APIEndpoint, remoteRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.SetBasicAuth(u.cfg.PrivateKey, "")

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", asset.ErrTransferFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// already-gone objects count as deleted
	if resp.StatusCode != http.StatusNoContent &&
		resp.StatusCode != http.StatusOK &&
		resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("%w: delete status %d", asset.ErrTransferFailed, resp.StatusCode)
	}

	return nil
}

// IsConfigured reports whether the remote store credentials and endpoints
// required for uploads are all present.
func (u *Uploader) IsConfigured() bool {
	return u.cfg.UploadEndpoint != "" &&
		u.cfg.URLEndpoint != "" &&
		u.cfg.PublicKey != "" &&
		u.cfg.PrivateKey != ""
}
