package store

import (
	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
)

// Sentinel errors. They match the domain codes, so
// errors.Is(store.ErrNotFound, domainerrors.ErrNotFound) holds.
var (
	ErrNotFound     = domainerrors.NotFound("run not found")
	ErrInvalidInput = domainerrors.Validation("invalid run")
)
