package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the actor lacks the role required for the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrUnauthorized indicates that the actor could not be identified or authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrPersistence indicates that the store reported a fault or did not
// acknowledge a write. Kept distinct from ErrDuplicate so callers can tell
// a failed write apart from a uniqueness collision.
var ErrPersistence = errors.New("persistence failure")
