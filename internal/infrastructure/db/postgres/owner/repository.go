package owner

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"asset-history-api/internal/domain/asset"
	"asset-history-api/internal/domain/owner"
	"asset-history-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) owner.Repository {
	return &Repository{db: db}
}

func (r *Repository) EnsureOwner(ctx context.Context, uuid owner.UUID) (owner.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, UpsertOwner, uuid).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: upsert owner: %v", asset.ErrStoreUnavailable, err)
	}

	return owner.ID(id), nil
}

func (r *Repository) FetchOwner(ctx context.Context, uuid owner.UUID) (*owner.Owner, error) {
	o := new(Owner)
	err := r.db.QueryRow(ctx, SelectOwnerByUUID, uuid).Scan(
		&o.ID,
		&o.UUID,
		&o.CurrentProfileURL,
		&o.CurrentBannerURL,

		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, asset.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("%w: fetch owner: %v", asset.ErrStoreUnavailable, err)
	}

	return fromDBModel(o), nil
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid owner.UUID) (owner.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, asset.ErrOwnerNotFound
		}
		return 0, fmt.Errorf("%w: fetch owner id: %v", asset.ErrStoreUnavailable, err)
	}

	return owner.ID(id), nil
}
