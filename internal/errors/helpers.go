package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

var typeNames = map[Code]string{
	CodeCanceled:           "CanceledError",
	CodeInvalidArgument:    "ValidationError",
	CodeDeadlineExceeded:   "TimeoutError",
	CodeNotFound:           "NotFoundError",
	CodeAlreadyExists:      "DuplicateJobError",
	CodeFailedPrecondition: "PreconditionError",
	CodeAborted:            "PlacementError",
	CodeOutOfRange:         "RangeError",
	CodeUnavailable:        "UnavailableError",
	CodeInternal:           "InternalError",
}

// TypeName returns the display name of the error's kind, e.g. "TimeoutError".
func TypeName(err error) string {
	if name, ok := typeNames[GetCode(err)]; ok {
		return name
	}
	return "Error"
}

// Display renders err the way failed jobs are reported to clients:
// "<TypeName>: <message>".
func Display(err error) string {
	if err == nil {
		return ""
	}
	return TypeName(err) + ": " + GetMessage(err)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsPlacementFailed checks if an error came from a placement that logic could not satisfy
func IsPlacementFailed(err error) bool {
	return GetCode(err) == CodeAborted
}

// IsCanceled checks if an error is a canceled error
func IsCanceled(err error) bool {
	return GetCode(err) == CodeCanceled
}

// IsDeadlineExceeded checks if an error is a deadline exceeded error
func IsDeadlineExceeded(err error) bool {
	return GetCode(err) == CodeDeadlineExceeded
}
