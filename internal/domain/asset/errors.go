package asset

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrOutOfStock    = errors.New("not enough quantity in inventory")
)
