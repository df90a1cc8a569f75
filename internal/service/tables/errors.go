package tables

import "errors"

var (
	ErrTableNotFound = errors.New("table not found")
	ErrInvalidInput  = errors.New("invalid input data")
	ErrInternal      = errors.New("service: internal error")
)
