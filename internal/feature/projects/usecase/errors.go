// Package usecase implements the business logic for the projects feature.
package usecase

import "errors"

// ErrProjectNotFound is returned when no project matches the given ID.
var ErrProjectNotFound = errors.New("project not found")
