package models

import "errors"

// ErrNotFound marks absence of expected data. Handlers render it as a
// distinct not-found state instead of a backend failure.
var ErrNotFound = errors.New("not found")
