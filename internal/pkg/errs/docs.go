// Package errs provides standardized error types for the rental marketplace core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure taxonomy of the order workflow:
//   - ObjectNotFoundError: a referenced entity is absent
//   - PermissionError: the actor lacks rights for the requested transition
//   - InvalidStateError: the current status disallows the requested transition
//   - ValidationError: malformed input at an operation boundary
//   - ConflictError: the referenced entity is not in a usable condition
//   - DataIntegrityError: a stored reference no longer resolves
//   - GenerationError: the document renderer could not produce an artifact
//
// plus construction-time errors shared by value objects and commands
// (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError).
//
// Each error type follows the same pattern: a sentinel error variable, a struct
// with fields for details, constructors with and without cause, an Error()
// method, and an Unwrap() method so errors.Is classification works everywhere.
package errs
