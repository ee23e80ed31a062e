package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrFileNotFound indicates that the source data file does not exist.
var ErrFileNotFound = errors.New("data file not found")

// ErrDecodeFailure indicates that none of the candidate text encodings could decode the data file.
var ErrDecodeFailure = errors.New("data file could not be decoded")

// ErrMalformedTable indicates that the decoded data file is not a usable table.
var ErrMalformedTable = errors.New("malformed data table")

// ErrEmptySelection indicates that a selection matched no observations.
// It is an expected state, callers render a neutral notice instead of failing.
var ErrEmptySelection = errors.New("no observations for selection")
