package mediakit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"

	"asset-history-api/config"
	"asset-history-api/internal/domain/asset"
)

// credentialTTL matches the expiry the remote store enforces on the
// signature it verifies.
const credentialTTL = time.Hour

type Signer struct {
	publicKey  string
	privateKey string
}

func NewSigner(cfg config.MediaKit) *Signer {
	return &Signer{
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
	}
}

// IssueCredential returns a single-use upload credential. The signature is
// HMAC-SHA1 over token+expire (decimal unix seconds), the exact message the
// remote store's verifier recomputes.
func (s *Signer) IssueCredential() (*asset.UploadCredential, error) {
	if s.privateKey == "" {
		return nil, asset.ErrSigningUnavailable
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(credentialTTL).Unix()

	mac := hmac.New(sha1.New, []byte(s.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expiresAt, 10)))

	return &asset.UploadCredential{
		Token:     token,
		Signature: hex.EncodeToString(mac.Sum(nil)),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Signer) PublicKey() string { return s.publicKey }
