package owner

import (
	"context"
)

type Repository interface {
	// EnsureOwner creates the owner row on first upload and returns the
	// internal id either way.
	EnsureOwner(ctx context.Context, uuid UUID) (ID, error)
	FetchOwner(ctx context.Context, uuid UUID) (*Owner, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
}
