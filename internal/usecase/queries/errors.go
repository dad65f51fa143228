package queries

import "agromarket-api/internal/pkg/errs"

var (
	ErrInvalidCursor = errs.New("invalid pagination cursor")
	ErrForbidden     = errs.New("operation not allowed for this role")
)
