package owner

const (
	UpsertOwner = `
		INSERT INTO owners (uuid)
		VALUES ($1)
		ON CONFLICT (uuid) DO UPDATE SET updated_at = now()
		RETURNING id
	`
	SelectOwnerByUUID = `
		SELECT id, uuid, current_profile_url, current_banner_url, created_at, updated_at
		FROM owners
		WHERE uuid = $1
	`
	SelectIdByUUID = `SELECT id FROM owners WHERE uuid = $1::uuid`
)
