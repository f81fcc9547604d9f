package asset

import (
	domain "asset-history-api/internal/domain/asset"
)

func ToResponseAssetVersion(rec domain.AssetRecord) AssetVersion {
	return AssetVersion{
		UUID:        rec.UUID,
		Slot:        rec.Slot.String(),
		RemoteRef:   rec.RemoteRef,
		URL:         rec.URL,
		PreviewURL:  rec.PreviewURL,
		SizeBytes:   rec.SizeBytes,
		ContentType: rec.ContentType,
		IsActive:    rec.IsActive,
		UploadedAt:  rec.UploadedAt,
	}
}

func ToResponseAssetVersions(recs domain.AssetRecords) AssetVersions {
	out := make(AssetVersions, len(recs))
	for idx, rec := range recs {
		out[idx] = ToResponseAssetVersion(*rec)
	}

	return out
}
