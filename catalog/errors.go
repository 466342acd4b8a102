package catalog

import "errors"

// ErrNoCatalog indicates the catalog file does not exist.
var ErrNoCatalog = errors.New("catalog file not found")
