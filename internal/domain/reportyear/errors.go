package reportyear

import "errors"

// Report year registry errors
var (
	ErrYearExists   = errors.New("reporting year already registered")
	ErrYearNotFound = errors.New("reporting year not found")
	ErrYearInvalid  = errors.New("reporting year is out of range")
)
