package owner

import (
	"time"

	"github.com/google/uuid"
)

type (
	Owner struct {
		ID                uint64
		UUID              uuid.UUID
		CurrentProfileURL *string
		CurrentBannerURL  *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)
