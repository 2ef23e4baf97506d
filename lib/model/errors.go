package model

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when looking up an area, measure, value or
	// name that was never recorded.
	ErrNotFound = errors.New("not found")

	// ErrInvalidLanguageCode is returned by Area.SetName when the language
	// code is not exactly three alphabetic letters.
	ErrInvalidLanguageCode = errors.New("language code must be three alphabetic letters")
)
