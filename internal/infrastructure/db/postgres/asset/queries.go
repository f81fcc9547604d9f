package asset

const (
	DeactivateVersions = `
		UPDATE asset_versions
		SET is_active = false
		WHERE owner_id = $1 AND slot = $2 AND is_active
	`
	InsertVersion = `
		INSERT INTO asset_versions (owner_id, slot, remote_ref, url, preview_url, size_bytes, content_type, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true)
		RETURNING
		  id, uuid, slot, remote_ref, url, preview_url, size_bytes, content_type, is_active, uploaded_at
	`
	// keeps the newest max_retained rows; ties on uploaded_at break by
	// insertion order so the evicted row is always the oldest
	PruneVersions = `
		DELETE FROM asset_versions
		WHERE owner_id = $1 AND slot = $2 AND id IN (
			SELECT id FROM asset_versions
			WHERE owner_id = $1 AND slot = $2
			ORDER BY uploaded_at DESC, id DESC
			OFFSET $3
		)
		RETURNING uuid, remote_ref
	`
	SelectHistory = `
		SELECT id, uuid, slot, remote_ref, url, preview_url, size_bytes, content_type, is_active, uploaded_at
		FROM asset_versions
		WHERE owner_id = $1 AND slot = $2
		ORDER BY uploaded_at DESC, id DESC
		LIMIT $3
	`
	SelectVersionForUpdate = `
		SELECT id, uuid, slot, remote_ref, url, preview_url, size_bytes, content_type, is_active, uploaded_at
		FROM asset_versions
		WHERE owner_id = $1 AND slot = $2 AND uuid = $3
		FOR UPDATE
	`
	// single statement keeps the single-active invariant: the flag is
	// true exactly where id matches
	SwitchActiveVersion = `
		UPDATE asset_versions
		SET is_active = (id = $3)
		WHERE owner_id = $1 AND slot = $2
	`
	UpdateCurrentProfileURL = `
		UPDATE owners
		SET current_profile_url = $2, updated_at = now()
		WHERE id = $1
	`
	UpdateCurrentBannerURL = `
		UPDATE owners
		SET current_banner_url = $2, updated_at = now()
		WHERE id = $1
	`
)
