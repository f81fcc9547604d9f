package owner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-history-api/internal/domain/asset"
	"asset-history-api/internal/domain/owner"
)

func TestRepository_EnsureOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ownerUUID := uuid.New()

	mock.ExpectQuery("INSERT INTO owners").
		WithArgs(ownerUUID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uint64(7)))

	repo := NewRepository(mock)

	id, err := repo.EnsureOwner(context.Background(), ownerUUID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID(7), id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EnsureOwner_StoreDown(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ownerUUID := uuid.New()

	mock.ExpectQuery("INSERT INTO owners").
		WithArgs(ownerUUID).
		WillReturnError(assert.AnError)

	repo := NewRepository(mock)

	_, err = repo.EnsureOwner(context.Background(), ownerUUID)
	require.ErrorIs(t, err, asset.ErrStoreUnavailable)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ownerUUID := uuid.New()
	profileURL := "https://media.example.com/acme/profiles/o1/pic.png"

	mock.ExpectQuery("FROM owners").
		WithArgs(ownerUUID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "uuid", "current_profile_url", "current_banner_url", "created_at", "updated_at"}).
			AddRow(uint64(7), ownerUUID, &profileURL, (*string)(nil),
				time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)))

	repo := NewRepository(mock)

	o, err := repo.FetchOwner(context.Background(), ownerUUID)
	require.NoError(t, err)

	assert.Equal(t, ownerUUID, o.UUID)
	require.NotNil(t, o.CurrentProfileURL)
	assert.Equal(t, profileURL, *o.CurrentProfileURL)
	assert.Nil(t, o.CurrentBannerURL)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchInternalID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ownerUUID := uuid.New()

	mock.ExpectQuery("SELECT id FROM owners").
		WithArgs(ownerUUID.String()).
		WillReturnError(pgx.ErrNoRows)

	repo := NewRepository(mock)

	_, err = repo.FetchInternalID(context.Background(), ownerUUID)
	require.ErrorIs(t, err, asset.ErrOwnerNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
