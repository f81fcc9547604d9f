package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// assets
	RouteOwners          = RouteApiV1 + "/owners"
	RouteOwnerAsset      = RouteOwners + "/:owner_id/assets/:slot"
	RouteAssetHistory    = RouteOwnerAsset + "/history"
	RouteActivateVersion = RouteOwnerAsset + "/versions/:version_id/activate"
	RouteDerivedURLs     = RouteApiV1 + "/derived-urls"

	// ops
	RouteStatus  = RouteApiV1 + "/status"
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
