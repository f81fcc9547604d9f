package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"asset-history-api/internal/application/ports"
	domain "asset-history-api/internal/domain/asset"
	assetDTO "asset-history-api/internal/interface/api/rest/dto/asset"
	"asset-history-api/internal/interface/api/rest/validator"
)

// non-standard code used for uploads abandoned by the client
const statusClientClosedRequest = 499

type AssetController struct {
	historyService ports.AssetHistoryService
	logger         *zap.Logger
}

func NewAssetController(
	r *gin.Engine,
	historyService ports.AssetHistoryService,
	logger *zap.Logger,
) *AssetController {
	ac := &AssetController{
		historyService: historyService,
		logger:         logger,
	}

	r.POST(RouteOwnerAsset, ac.UploadAssetHandler)
	r.GET(RouteAssetHistory, ac.GetHistoryHandler)
	r.POST(RouteActivateVersion, ac.ActivateVersionHandler)
	r.GET(RouteDerivedURLs, ac.GetDerivedURLsHandler)
	r.GET(RouteStatus, ac.GetStatusHandler)

	return ac
}

func (ac *AssetController) UploadAssetHandler(c *gin.Context) {
	ok, ownerUUID := validator.IsUUID(c.Param("owner_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id must be a valid UUID"})
		return
	}
	slot, ok := validator.ValidateSlot(c.Param("slot"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be one of: profile, banner"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	rec, err := ac.historyService.UploadAsset(c.Request.Context(), ownerUUID, slot, fh, nil)
	if err != nil {
		ac.renderError(c, err, "UploadAsset() error", "failed to upload asset")
		return
	}

	c.JSON(http.StatusCreated, assetDTO.ToResponseAssetVersion(*rec))
}

func (ac *AssetController) GetHistoryHandler(c *gin.Context) {
	ok, ownerUUID := validator.IsUUID(c.Param("owner_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id must be a valid UUID"})
		return
	}
	slot, ok := validator.ValidateSlot(c.Param("slot"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be one of: profile, banner"})
		return
	}
	limit, err := validator.ValidateLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := ac.historyService.ListHistory(c.Request.Context(), ownerUUID, slot, limit)
	if err != nil {
		ac.renderError(c, err, "ListHistory() error", "failed to get history")
		return
	}

	c.JSON(http.StatusOK, assetDTO.ResponseData{
		Data: assetDTO.ToResponseAssetVersions(records),
	})
}

func (ac *AssetController) ActivateVersionHandler(c *gin.Context) {
	ok, ownerUUID := validator.IsUUID(c.Param("owner_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id must be a valid UUID"})
		return
	}
	slot, ok := validator.ValidateSlot(c.Param("slot"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be one of: profile, banner"})
		return
	}
	ok, versionUUID := validator.IsUUID(c.Param("version_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "version_id must be a valid UUID"})
		return
	}

	url, err := ac.historyService.ActivateVersion(c.Request.Context(), ownerUUID, slot, versionUUID)
	if err != nil {
		ac.renderError(c, err, "ActivateVersion() error", "failed to activate version")
		return
	}

	c.JSON(http.StatusOK, assetDTO.ActivateResponse{URL: url})
}

func (ac *AssetController) GetDerivedURLsHandler(c *gin.Context) {
	baseURL := c.Query("url")
	if baseURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	slot, ok := validator.ValidateSlot(c.Query("slot"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be one of: profile, banner"})
		return
	}

	c.JSON(http.StatusOK, assetDTO.DerivedURLsResponse{
		Variants: ac.historyService.DerivedURLs(baseURL, slot),
	})
}

func (ac *AssetController) GetStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, assetDTO.StatusResponse{
		Configured: ac.historyService.IsConfigured(),
	})
}

// renderError maps the domain taxonomy to HTTP statuses. Validation and
// config errors are user-actionable and returned verbatim; store internals
// are hidden behind a generic message and logged.
func (ac *AssetController) renderError(c *gin.Context, err error, logMsg, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNoFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnsupportedType):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSigningUnavailable), errors.Is(err, domain.ErrMissingCredentials):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCancelled):
		c.JSON(statusClientClosedRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTimedOut):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTransferFailed), errors.Is(err, domain.ErrBadResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		ac.logger.Error(logMsg, zap.Error(err))
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
		ac.logger.Error(logMsg, zap.Error(err))
	}
}
