package asset

import (
	domain "asset-history-api/internal/domain/asset"
)

func fromDBModel(model *AssetVersion) *domain.AssetRecord {
	return &domain.AssetRecord{
		UUID: model.UUID,
		Slot: domain.Slot(model.Slot),

		RemoteRef:   model.RemoteRef,
		URL:         model.URL,
		PreviewURL:  model.PreviewURL,
		SizeBytes:   model.SizeBytes,
		ContentType: model.ContentType,

		IsActive:   model.IsActive,
		UploadedAt: model.UploadedAt,
	}
}

func fromDBModels(models *AssetVersions) domain.AssetRecords {
	records := make(domain.AssetRecords, len(*models))
	for idx, m := range *models {
		records[idx] = fromDBModel(m)
	}

	return records
}
