package mediakit

import (
	"fmt"
	"strings"

	"asset-history-api/config"
	"asset-history-api/internal/domain/asset"
)

// URLBuilder derives presentation variants from a stored asset URL by
// appending the store's transform query. Pure string work, no network I/O.
type URLBuilder struct {
	urlEndpoint string
	quality     int
	format      string
}

func NewURLBuilder(cfg config.MediaKit, hist config.History) *URLBuilder {
	return &URLBuilder{
		urlEndpoint: strings.TrimSuffix(cfg.URLEndpoint, "/"),
		quality:     hist.Quality,
		format:      hist.Format,
	}
}

type variantSize struct {
	name   string
	w, h   int
}

var slotVariants = map[asset.Slot][]variantSize{
	asset.SlotProfile: {
		{"thumbnail", 150, 150},
		{"medium", 300, 300},
		{"large", 500, 500},
	},
	asset.SlotBanner: {
		{"small", 600, 150},
		{"medium", 1200, 300},
		{"large", 1800, 450},
	},
}

// Derive maps a stored URL to its presentation variants for the slot.
// URLs outside the configured endpoint pass through unchanged for every
// variant, so callers can render third-party URLs without special cases.
// Deterministic: identical input yields identical output.
func (b *URLBuilder) Derive(baseURL string, slot asset.Slot) map[string]string {
	out := map[string]string{"original": baseURL}

	variants, knownSlot := slotVariants[slot]
	if !knownSlot || b.urlEndpoint == "" || !strings.HasPrefix(baseURL, b.urlEndpoint+"/") {
		out["optimized"] = baseURL
		if knownSlot {
			for _, v := range variants {
				out[v.name] = baseURL
			}
		}
		return out
	}

	out["optimized"] = b.withTransform(baseURL, fmt.Sprintf("q-%d,f-%s", b.quality, b.format))
	for _, v := range variants {
		out[v.name] = b.withTransform(baseURL,
			fmt.Sprintf("w-%d,h-%d,c-fill,q-%d,f-%s", v.w, v.h, b.quality, b.format))
	}

	return out
}

func (b *URLBuilder) withTransform(baseURL, tr string) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "tr=" + tr
}
