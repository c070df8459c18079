package apperrors

import "errors"

// ErrInvalidInput indicates that a required numeric field is missing, malformed or non-positive.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownCurrency indicates that a currency code has no entry in any rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrNoRate indicates that a multi-package calculation was requested without any positive rate.
var ErrNoRate = errors.New("at least one positive rate is required")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")
