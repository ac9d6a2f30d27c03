package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as unwrap targets for errors.Is classification.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidState      = errors.New("invalid state")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("conflict")
	ErrDataIntegrity     = errors.New("data integrity violation")
	ErrGeneration        = errors.New("document generation failed")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// PermissionError indicates that the acting party may not perform the
// requested operation on the target entity.
type PermissionError struct {
	Operation string
	ActorID   string
	Cause     error
}

func NewPermissionError(operation string, actorID string) *PermissionError {
	return &PermissionError{Operation: operation, ActorID: actorID}
}

func NewPermissionErrorWithCause(operation string, actorID string, cause error) *PermissionError {
	return &PermissionError{Operation: operation, ActorID: actorID, Cause: cause}
}

func (e *PermissionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: actor %s may not %s (cause: %s)",
			ErrPermissionDenied, e.ActorID, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: actor %s may not %s", ErrPermissionDenied, e.ActorID, e.Operation))
}

func (e *PermissionError) Unwrap() error {
	return ErrPermissionDenied
}

// InvalidStateError indicates that the entity's current status disallows
// the requested transition.
type InvalidStateError struct {
	Operation string
	State     string
	Cause     error
}

func NewInvalidStateError(operation string, state string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state}
}

func NewInvalidStateErrorWithCause(operation string, state string, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s while %s (cause: %s)",
			ErrInvalidState, e.Operation, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s while %s", ErrInvalidState, e.Operation, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ValidationError indicates malformed input rejected at an operation boundary.
type ValidationError struct {
	ParamName string
	Cause     error
}

func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValidation, e.ParamName))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError indicates the referenced entity exists but is not in a
// condition that permits the operation, e.g. a unit that is not available.
type ConflictError struct {
	ParamName string
	Condition string
	Cause     error
}

func NewConflictError(paramName string, condition string) *ConflictError {
	return &ConflictError{ParamName: paramName, Condition: condition}
}

func NewConflictErrorWithCause(paramName string, condition string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Condition: condition, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is %s (cause: %s)", ErrConflict, e.ParamName, e.Condition, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %s", ErrConflict, e.ParamName, e.Condition))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// DataIntegrityError indicates that a stored reference no longer resolves,
// e.g. an order pointing at a unit or user that has been removed.
type DataIntegrityError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewDataIntegrityError(paramName string, id any) *DataIntegrityError {
	return &DataIntegrityError{ParamName: paramName, ID: id}
}

func NewDataIntegrityErrorWithCause(paramName string, id any, cause error) *DataIntegrityError {
	return &DataIntegrityError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *DataIntegrityError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %v does not resolve (cause: %s)",
			ErrDataIntegrity, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %v does not resolve", ErrDataIntegrity, e.ParamName, e.ID))
}

func (e *DataIntegrityError) Unwrap() error {
	return ErrDataIntegrity
}

// GenerationError indicates the document renderer could not produce an artifact.
type GenerationError struct {
	Subject string
	Cause   error
}

func NewGenerationError(subject string) *GenerationError {
	return &GenerationError{Subject: subject}
}

func NewGenerationErrorWithCause(subject string, cause error) *GenerationError {
	return &GenerationError{Subject: subject, Cause: cause}
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrGeneration, e.Subject, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrGeneration, e.Subject))
}

func (e *GenerationError) Unwrap() error {
	return ErrGeneration
}

// ValueIsRequiredError indicates a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minValue any, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}
