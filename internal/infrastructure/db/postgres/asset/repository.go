package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "asset-history-api/internal/domain/asset"
	"asset-history-api/internal/domain/owner"
	"asset-history-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

// AppendVersion runs deactivate -> insert -> prune -> owner-pointer update
// in one transaction, so readers never observe zero or two active records
// and the ledger never holds more than maxRetained rows at rest.
func (r *Repository) AppendVersion(
	ctx context.Context,
	ownerID owner.ID,
	slot domain.Slot,
	info domain.RemoteAssetInfo,
	maxRetained int,
) (*domain.AssetRecord, []domain.PrunedVersion, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, storeErr("begin append", err)
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, DeactivateVersions, ownerID, slot.String()); err != nil {
		return nil, nil, storeErr("deactivate versions", err)
	}

	av := new(AssetVersion)
	if err = tx.QueryRow(
		ctx,
		InsertVersion,
		ownerID, slot.String(), info.RemoteRef, info.URL, info.PreviewURL, info.SizeBytes, info.ContentType,
	).Scan(
		&av.ID,
		&av.UUID,
		&av.Slot,

		&av.RemoteRef,
		&av.URL,
		&av.PreviewURL,
		&av.SizeBytes,
		&av.ContentType,

		&av.IsActive,
		&av.UploadedAt,
	); err != nil {
		return nil, nil, storeErr("insert version", err)
	}

	pruned, err := r.pruneToLimit(ctx, tx, ownerID, slot, maxRetained)
	if err != nil {
		return nil, nil, err
	}

	if err = updateCurrentAsset(ctx, tx, ownerID, slot, av.URL); err != nil {
		return nil, nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, nil, storeErr("commit append", err)
	}

	return fromDBModel(av), pruned, nil
}

func (r *Repository) FetchHistory(ctx context.Context, ownerID owner.ID, slot domain.Slot, limit int) (domain.AssetRecords, error) {
	rows, err := r.db.Query(ctx, SelectHistory, ownerID, slot.String(), limit)
	if err != nil {
		return nil, storeErr("fetch history", err)
	}
	defer rows.Close()

	var avs AssetVersions
	for rows.Next() {
		av := new(AssetVersion)

		if err = rows.Scan(
			&av.ID,
			&av.UUID,
			&av.Slot,

			&av.RemoteRef,
			&av.URL,
			&av.PreviewURL,
			&av.SizeBytes,
			&av.ContentType,

			&av.IsActive,
			&av.UploadedAt,
		); err != nil {
			return nil, storeErr("scan history row", err)
		}

		avs = append(avs, av)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate history", err)
	}

	return fromDBModels(&avs), nil
}

// ActivateVersion flips the active flag to the requested version and moves
// the owner pointer, atomically. The row lock on the target serializes
// concurrent activates against appends for the same key.
func (r *Repository) ActivateVersion(ctx context.Context, ownerID owner.ID, slot domain.Slot, versionUUID uuid.UUID) (*domain.AssetRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin activate", err)
	}
	defer tx.Rollback(ctx)

	av := new(AssetVersion)
	if err = tx.QueryRow(ctx, SelectVersionForUpdate, ownerID, slot.String(), versionUUID).Scan(
		&av.ID,
		&av.UUID,
		&av.Slot,

		&av.RemoteRef,
		&av.URL,
		&av.PreviewURL,
		&av.SizeBytes,
		&av.ContentType,

		&av.IsActive,
		&av.UploadedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr("select version", err)
	}

	if _, err = tx.Exec(ctx, SwitchActiveVersion, ownerID, slot.String(), av.ID); err != nil {
		return nil, storeErr("switch active version", err)
	}
	av.IsActive = true

	if err = updateCurrentAsset(ctx, tx, ownerID, slot, av.URL); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, storeErr("commit activate", err)
	}

	return fromDBModel(av), nil
}

func (r *Repository) pruneToLimit(ctx context.Context, tx pgx.Tx, ownerID owner.ID, slot domain.Slot, maxRetained int) ([]domain.PrunedVersion, error) {
	rows, err := tx.Query(ctx, PruneVersions, ownerID, slot.String(), maxRetained)
	if err != nil {
		return nil, storeErr("prune versions", err)
	}
	defer rows.Close()

	var pruned []domain.PrunedVersion
	for rows.Next() {
		var p domain.PrunedVersion
		if err = rows.Scan(&p.UUID, &p.RemoteRef); err != nil {
			return nil, storeErr("scan pruned row", err)
		}
		pruned = append(pruned, p)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate pruned", err)
	}

	return pruned, nil
}

func updateCurrentAsset(ctx context.Context, tx pgx.Tx, ownerID owner.ID, slot domain.Slot, url string) error {
	query := UpdateCurrentProfileURL
	if slot == domain.SlotBanner {
		query = UpdateCurrentBannerURL
	}
	if _, err := tx.Exec(ctx, query, ownerID, url); err != nil {
		return storeErr("update current asset", err)
	}

	return nil
}

func storeErr(op string, err error) error {
	switch {
	case postgres.IsPgUniqueViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrConflict, op)
	case postgres.IsPgSerializationFailure(err):
		return fmt.Errorf("%w: %s", domain.ErrConflict, op)
	default:
		return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
	}
}
