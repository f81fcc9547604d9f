package asset

import (
	"time"

	"github.com/google/uuid"
)

// Slot is a named asset category an owner can upload into.
type Slot string

const (
	SlotProfile Slot = "profile"
	SlotBanner  Slot = "banner"
)

func ParseSlot(s string) (Slot, bool) {
	switch Slot(s) {
	case SlotProfile, SlotBanner:
		return Slot(s), true
	}
	return "", false
}

func (s Slot) String() string { return string(s) }

type (
	// AssetRecord is one stored version in the (owner, slot) ledger.
	// All fields except IsActive are immutable after insertion.
	AssetRecord struct {
		UUID uuid.UUID
		Slot Slot

		RemoteRef   string
		URL         string
		PreviewURL  string
		SizeBytes   uint64
		ContentType string

		IsActive   bool
		UploadedAt time.Time
	}
	AssetRecords []*AssetRecord
)

// RemoteAssetInfo is the parsed result of a successful transfer to the
// remote asset store, before it is recorded in the ledger.
type RemoteAssetInfo struct {
	RemoteRef   string
	URL         string
	PreviewURL  string
	SizeBytes   uint64
	ContentType string
}

// PrunedVersion identifies a ledger entry evicted by retention so its
// remote object can be deleted best-effort.
type PrunedVersion struct {
	UUID      uuid.UUID
	RemoteRef string
}

// UploadCredential is a short-lived, single-use authorization for one
// transfer to the remote store. It is never persisted.
type UploadCredential struct {
	Token     string
	Signature string
	ExpiresAt int64
}
