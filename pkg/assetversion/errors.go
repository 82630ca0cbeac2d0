package assetversion

import "errors"

var (
	ErrNoAssets     = errors.New("no asset files found")
	ErrHashAssets   = errors.New("failed to hash asset files")
	ErrStoreFailure = errors.New("asset version store failure")
)
