package validator

import (
	"errors"
	"strconv"

	"github.com/google/uuid"

	"asset-history-api/internal/domain/asset"
)

func ValidateLimit(limit string) (int, error) {
	if limit == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(limit)
	if err != nil || n < 0 {
		return 0, errors.New("invalid limit")
	}
	return n, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateSlot(s string) (asset.Slot, bool) {
	return asset.ParseSlot(s)
}
