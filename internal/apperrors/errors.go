package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRefIntegrity indicates a foreign-key violation: inserting a transaction
// that references a missing batch, or deleting a batch that still has
// purchase or sale rows pointing at it.
var ErrRefIntegrity = errors.New("referential integrity violation")
