package plan

import "errors"

var (
	ErrUnknownTier             = errors.New("unknown plan tier")
	ErrInvalidCatalog          = errors.New("invalid plan catalog configuration")
	ErrFailedToLoadCatalog     = errors.New("failed to load plan catalog")
	ErrFeatureChainBroken      = errors.New("plan feature sets must be cumulative across tiers")
	ErrNegativeLimit           = errors.New("plan limit must be non-negative or unlimited")
	ErrMissingTier             = errors.New("plan catalog must define every tier")
	ErrMissingResource         = errors.New("plan must define a limit for every resource")
	ErrFailedToParseCatalogDoc = errors.New("failed to parse plan catalog document")
)
