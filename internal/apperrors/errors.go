package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrProtected indicates that a delete was rejected because other rows still
// reference the target.
var ErrProtected = errors.New("protected reference")

// ErrIntegrity indicates that the storage layer rejected a write that had
// already passed validation (defense-in-depth constraints such as CHECK or
// unique indexes).
var ErrIntegrity = errors.New("integrity constraint violated")

// ValidationError carries field-level validation detail. Callers are expected
// to correct the listed fields and retry.
type ValidationError struct {
	// Fields maps a field name to the messages recorded against it.
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError ready to collect field
// failures.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a failure message against a field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// HasErrors reports whether any field failure has been recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil returns the error itself when failures were recorded, nil otherwise.
// Returning the concrete type directly from validation routines would yield a
// non-nil interface even when empty.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.Fields[f], "; ")))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, ", "))
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ProtectionError is returned when deleting a row that other rows still
// reference under a protect-on-delete policy.
type ProtectionError struct {
	Entity       string // entity whose deletion was rejected
	ID           string
	ReferencedBy string // entity holding the protecting reference
}

func (e *ProtectionError) Error() string {
	return fmt.Sprintf("cannot delete %s %s: still referenced by %s", e.Entity, e.ID, e.ReferencedBy)
}

// Is lets errors.Is(err, ErrProtected) match any ProtectionError.
func (e *ProtectionError) Is(target error) bool {
	return target == ErrProtected
}

// IntegrityError is returned when a storage-level constraint rejects a write.
// It may fire even after validation passed; callers must treat it as fatal to
// the attempted save.
type IntegrityError struct {
	Constraint string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIntegrity.Error(), e.Constraint)
}

// Is lets errors.Is(err, ErrIntegrity) match any IntegrityError.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}
