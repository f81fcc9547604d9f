package owner

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID

	// Owner is the external identity assets belong to. The current-asset
	// URLs always point at the single active ledger record per slot.
	Owner struct {
		UUID              UUID
		CurrentProfileURL *string
		CurrentBannerURL  *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)
