package tui

import "errors"

// Sentinel errors.
var (
	ErrNoSource     = errors.New("no source to pick from")
	ErrReadOnly     = errors.New("source is read-only")
	ErrNoCandidates = errors.New("no extractable lines")
)
