package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors value via errors.Is, so
// callers can branch on "was this a validation failure" without inspecting
// individual fields.
var ErrValidationFailed = errors.New("validation failed")
