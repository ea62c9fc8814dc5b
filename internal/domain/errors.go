package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAssetType is returned for an unrecognized asset type tag.
	ErrInvalidAssetType = errors.New("invalid asset type")

	// ErrMissingScopeData means the export data lacks the field the asset type needs.
	// Callers treat it as an empty scope.
	ErrMissingScopeData = errors.New("missing scope data")

	// ErrDanglingReference means export data names an entity the scene graph does not have.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrFixDidNotConverge means a fix ran but re-validation still fails.
	ErrFixDidNotConverge = errors.New("fix did not converge")

	// ErrNotFound is returned by scene graph accessors for unknown names.
	ErrNotFound = errors.New("not found")

	// ErrUnknownValidator is returned by the registry for names it does not hold.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrInvalidCommand is returned when a command does not fit its target.
	ErrInvalidCommand = errors.New("invalid command")
)

// ReferenceError lists entities that export data or the scene graph names but the
// scene graph cannot resolve. It matches ErrDanglingReference.
type ReferenceError struct {
	Kind  string
	Names []string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s could not be found: %s", e.Kind, strings.Join(e.Names, ", "))
}

func (e *ReferenceError) Unwrap() error { return ErrDanglingReference }

// Message renders the error as a user-facing sentence.
func (e *ReferenceError) Message() string {
	msg := e.Error()
	return strings.ToUpper(msg[:1]) + msg[1:]
}
