package janggi

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidLayout     = errors.New("invalid layout")
)
