// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedAliasName is the sentinel error wrapped by MalformedNameError.
	ErrMalformedAliasName = errors.New("malformed alias name")
	// ErrScopeOutOfRange is the sentinel error wrapped by ScopeOutOfRangeError.
	ErrScopeOutOfRange = errors.New("alias scope out of range")
	// ErrAliasNotFound is returned when a lookup, deletion, or rename targets
	// a key that is not in the table.
	ErrAliasNotFound = errors.New("alias not found")
	// ErrAliasExists is returned when a rename would overwrite an existing alias.
	ErrAliasExists = errors.New("alias already exists")
	// ErrStoreCorrupt is returned when the persisted catalog file exists but
	// cannot be parsed into the expected schema.
	ErrStoreCorrupt = errors.New("alias catalog is corrupt")
	// ErrStoreWriteFailed is returned when the catalog could not be persisted.
	ErrStoreWriteFailed = errors.New("alias catalog write failed")
)

type (
	// MalformedNameError is returned when an alias name violates the prefix
	// or syntax rules. It wraps ErrMalformedAliasName for errors.Is().
	MalformedNameError struct {
		Name   string
		Reason string
	}

	// ScopeOutOfRangeError is returned when the leading dots of an alias name
	// request more ancestor levels than exist above the working directory.
	// It wraps ErrScopeOutOfRange for errors.Is().
	ScopeOutOfRangeError struct {
		Name string
		Dir  string
	}
)

// Error implements the error interface.
func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("malformed alias name %q: %s", e.Name, e.Reason)
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *MalformedNameError) Unwrap() error { return ErrMalformedAliasName }

// Error implements the error interface.
func (e *ScopeOutOfRangeError) Error() string {
	return fmt.Sprintf("alias name %q walks above the filesystem root from %q", e.Name, e.Dir)
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *ScopeOutOfRangeError) Unwrap() error { return ErrScopeOutOfRange }
