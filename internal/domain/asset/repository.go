package asset

import (
	"context"

	"github.com/google/uuid"

	"asset-history-api/internal/domain/owner"
)

// Repository is the version-history ledger for (owner, slot) keys.
//
// AppendVersion and ActivateVersion are linearizable with respect to each
// other for one key: each runs in a single database transaction, so a
// concurrent reader never observes zero or more than one active record.
type Repository interface {
	// AppendVersion inserts a new active record, deactivates the rest,
	// prunes the ledger down to maxRetained (oldest first) and moves the
	// owner's current-asset pointer, all in one transaction. The pruned
	// versions are returned so their remote objects can be deleted
	// best-effort by the caller.
	AppendVersion(ctx context.Context, ownerID owner.ID, slot Slot, info RemoteAssetInfo, maxRetained int) (*AssetRecord, []PrunedVersion, error)

	// FetchHistory returns up to limit records, most recent first.
	FetchHistory(ctx context.Context, ownerID owner.ID, slot Slot, limit int) (AssetRecords, error)

	// ActivateVersion flips the active flag to the given version and
	// moves the owner's current-asset pointer in one transaction.
	// Returns ErrNotFound if the version is not in this ledger.
	ActivateVersion(ctx context.Context, ownerID owner.ID, slot Slot, versionUUID uuid.UUID) (*AssetRecord, error)
}
