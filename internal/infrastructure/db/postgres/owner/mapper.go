package owner

import (
	domain "asset-history-api/internal/domain/owner"
)

func fromDBModel(model *Owner) *domain.Owner {
	return &domain.Owner{
		UUID:              model.UUID,
		CurrentProfileURL: model.CurrentProfileURL,
		CurrentBannerURL:  model.CurrentBannerURL,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
