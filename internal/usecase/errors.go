package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")

	// ErrRecordNotFound means the event id is absent from every id column of
	// the fixtures table. It is a NotFound.
	ErrRecordNotFound = fmt.Errorf("%w: record not in fixtures", ErrNotFound)
	// ErrSeasonUndetermined means the fixtures row carries no usable season
	// year, explicit or derived.
	ErrSeasonUndetermined = errors.New("season undetermined")
)
