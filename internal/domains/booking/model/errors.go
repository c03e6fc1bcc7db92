package model

import "errors"

var (
	ErrWindowMissing     = errors.New("start and end are required")
	ErrStartNotFuture    = errors.New("start must be in the future")
	ErrEndNotFuture      = errors.New("end must be in the future")
	ErrStartNotBeforeEnd = errors.New("start must be before end")
)
