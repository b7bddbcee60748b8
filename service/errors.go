package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAssetNotFound marks a resolution miss inside an AssetError so callers
// can distinguish "no such file" from a decode failure.
var ErrAssetNotFound = errors.New("asset not found")

// ValidationError covers caller-correctable config problems (unknown body
// type, unknown or empty animation list).
type ValidationError struct {
	Field string
	Value string
	Valid []string
}

func (e *ValidationError) Error() string {
	if len(e.Value) == 0 {
		return fmt.Sprintf("%s is required, valid values: [%s]", e.Field, strings.Join(e.Valid, ", "))
	}
	return fmt.Sprintf("invalid %s %q, valid values: [%s]", e.Field, e.Value, strings.Join(e.Valid, ", "))
}

// AssetError is a terminal failure of one generation call: a required layer
// has no resolvable or decodable source image.
type AssetError struct {
	LayerType string
	Err       error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset load failure for layer %q: %v", e.LayerType, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// CatalogError means the asset root itself could not be read.
type CatalogError struct {
	Path string
	Err  error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog read failure at %s: %v", e.Path, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}
