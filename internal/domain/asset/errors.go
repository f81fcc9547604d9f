package asset

import "errors"

// Error taxonomy surfaced across the public boundary. Controllers map
// these to HTTP statuses with errors.Is; messages are user-actionable.
var (
	// validation
	ErrNoFile          = errors.New("no file provided")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")

	// configuration
	ErrSigningUnavailable = errors.New("signing key is not configured")
	ErrMissingCredentials = errors.New("asset store credentials are not configured")

	// transfer
	ErrCancelled      = errors.New("upload cancelled")
	ErrTimedOut       = errors.New("upload timed out")
	ErrTransferFailed = errors.New("transfer to asset store failed")
	ErrBadResponse    = errors.New("malformed asset store response")

	// history store
	ErrNotFound         = errors.New("asset version not found")
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrStoreUnavailable = errors.New("history store unavailable")
	ErrConflict         = errors.New("history store conflict")
)
