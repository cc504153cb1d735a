package domain

import "errors"

var (
	ErrInvalidWindow = errors.New("sample window must be positive")
	ErrRunNotFound   = errors.New("run not found")
	ErrDuplicateRun  = errors.New("duplicate run")
)
