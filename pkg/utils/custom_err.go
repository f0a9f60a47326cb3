package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrPlanNotReady           = errors.New("plan needs more information")
	ErrUnsupportedFormat      = errors.New("unsupported export format")
	ErrCatalogUnavailable     = errors.New("poi catalog unavailable")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI backend")
)
