package mediakit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-history-api/config"
	"asset-history-api/internal/domain/asset"
)

func newTestURLBuilder() *URLBuilder {
	return NewURLBuilder(
		config.MediaKit{URLEndpoint: "https://media.example.com/acme"},
		config.History{Quality: 80, Format: "auto"},
	)
}

func TestURLBuilder_Derive_Profile(t *testing.T) {
	b := newTestURLBuilder()
	base := "https://media.example.com/acme/profiles/u1/pic.jpg"

	out := b.Derive(base, asset.SlotProfile)

	assert.Equal(t, base, out["original"])
	assert.Equal(t, base+"?tr=q-80,f-auto", out["optimized"])
	assert.Contains(t, out["thumbnail"], "w-150,h-150,c-fill")
	assert.Contains(t, out["medium"], "w-300,h-300,c-fill")
	assert.Contains(t, out["large"], "w-500,h-500,c-fill")
	assert.NotContains(t, out, "small")
}

func TestURLBuilder_Derive_Banner(t *testing.T) {
	b := newTestURLBuilder()
	base := "https://media.example.com/acme/banners/u1/pic.jpg"

	out := b.Derive(base, asset.SlotBanner)

	assert.Contains(t, out["small"], "w-600,h-150,c-fill")
	assert.Contains(t, out["medium"], "w-1200,h-300,c-fill")
	assert.Contains(t, out["large"], "w-1800,h-450,c-fill")
	assert.NotContains(t, out, "thumbnail")
}

func TestURLBuilder_Derive_ForeignURLPassesThrough(t *testing.T) {
	b := newTestURLBuilder()
	base := "https://elsewhere.example.org/pic.jpg"

	out := b.Derive(base, asset.SlotProfile)

	for variant, url := range out {
		assert.Equal(t, base, url, "variant %s must pass through unchanged", variant)
	}
}

func TestURLBuilder_Derive_Idempotent(t *testing.T) {
	b := newTestURLBuilder()
	base := "https://media.example.com/acme/profiles/u1/pic.jpg"

	first := b.Derive(base, asset.SlotProfile)
	second := b.Derive(base, asset.SlotProfile)

	require.Equal(t, first, second)
}

func TestURLBuilder_Derive_ExistingQueryUsesAmpersand(t *testing.T) {
	b := newTestURLBuilder()
	base := "https://media.example.com/acme/profiles/u1/pic.jpg?v=2"

	out := b.Derive(base, asset.SlotProfile)

	assert.Equal(t, base+"&tr=q-80,f-auto", out["optimized"])
}
