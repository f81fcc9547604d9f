package mediakit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-history-api/config"
	"asset-history-api/internal/domain/asset"
)

func TestSigner_IssueCredential(t *testing.T) {
	s := NewSigner(config.MediaKit{
		PublicKey:  "pub_test",
		PrivateKey: "priv_test",
	})

	before := time.Now()
	cred, err := s.IssueCredential()
	require.NoError(t, err)

	// token carries uuid-grade entropy
	_, err = uuid.Parse(cred.Token)
	require.NoError(t, err)

	// expiry lands one hour out
	wantExpiry := before.Add(time.Hour).Unix()
	assert.InDelta(t, wantExpiry, cred.ExpiresAt, 2)

	// signature is HMAC-SHA1 over token+expire, hex encoded
	mac := hmac.New(sha1.New, []byte("priv_test"))
	mac.Write([]byte(cred.Token + strconv.FormatInt(cred.ExpiresAt, 10)))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), cred.Signature)
}

func TestSigner_IssueCredential_SingleUseTokens(t *testing.T) {
	s := NewSigner(config.MediaKit{PrivateKey: "priv_test"})

	a, err := s.IssueCredential()
	require.NoError(t, err)
	b, err := s.IssueCredential()
	require.NoError(t, err)

	assert.NotEqual(t, a.Token, b.Token)
	assert.NotEqual(t, a.Signature, b.Signature)
}

func TestSigner_IssueCredential_MissingKey(t *testing.T) {
	s := NewSigner(config.MediaKit{PublicKey: "pub_test"})

	cred, err := s.IssueCredential()
	require.ErrorIs(t, err, asset.ErrSigningUnavailable)
	assert.Nil(t, cred)
}
