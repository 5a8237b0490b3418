// Package errors provides structured error handling for the
// Schiavinato secret-sharing core. It defines sentinel errors and
// helpers for adding context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// SchiavinatoError is the structured error type for this module.
type SchiavinatoError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for the caller
	Cause      error             // Underlying error
}

func (e *SchiavinatoError) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SchiavinatoError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for SchiavinatoError: two errors of this
// type are equivalent if their codes match, regardless of Details or
// Cause.
func (e *SchiavinatoError) Is(target error) bool {
	var t *SchiavinatoError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &SchiavinatoError{
		Code:    "GENERAL_ERROR",
		Message: "an error occurred",
	}

	ErrInvalidInput = &SchiavinatoError{
		Code:    "INVALID_INPUT",
		Message: "invalid input",
	}

	// ErrInvalidMnemonic covers any mnemonic that fails structural or
	// checksum validation.
	ErrInvalidMnemonic = &SchiavinatoError{
		Code:    "INVALID_MNEMONIC",
		Message: "invalid mnemonic phrase",
	}

	// ErrInvalidShareCount covers a k or n outside [2, 2052] or k > n.
	ErrInvalidShareCount = &SchiavinatoError{
		Code:    "INVALID_SHARE_COUNT",
		Message: "invalid threshold or share count",
	}

	// ErrInsufficientShares denotes fewer than k shares supplied for
	// recovery. No function in this module returns it; Recover reports
	// failures through RecoveryResult.
	ErrInsufficientShares = &SchiavinatoError{
		Code:    "INSUFFICIENT_SHARES",
		Message: "not enough shares to recover the mnemonic",
	}

	// ErrDuplicateShareNumber denotes two supplied shares carrying the
	// same share number. No function in this module returns it; Recover
	// reports this case in RecoveryResult's Generic message.
	ErrDuplicateShareNumber = &SchiavinatoError{
		Code:    "DUPLICATE_SHARE_NUMBER",
		Message: "duplicate share number among supplied shares",
	}

	// ErrMalformedShare covers a share failing structural validation
	// (wrong word-share count, out-of-range field values, mismatched
	// word count between shares).
	ErrMalformedShare = &SchiavinatoError{
		Code:    "MALFORMED_SHARE",
		Message: "malformed share",
	}

	// ErrRowPathMismatch is returned when Path A and Path B disagree on
	// a row checksum; it signals corrupted or tampered share data.
	ErrRowPathMismatch = &SchiavinatoError{
		Code:    "ROW_PATH_MISMATCH",
		Message: "row checksum disagreement between verification paths",
	}

	// ErrGlobalPathMismatch is returned when Path A and Path B disagree
	// on the global integrity check.
	ErrGlobalPathMismatch = &SchiavinatoError{
		Code:    "GLOBAL_PATH_MISMATCH",
		Message: "global integrity check disagreement between verification paths",
	}

	// ErrRecoveredChecksumInvalid denotes a recovery that interpolates
	// a mnemonic whose own BIP39 checksum does not validate; this means
	// the supplied shares, though internally consistent, do not
	// reconstruct the original secret. No function in this module
	// returns it; Recover reports this case as RecoveryErrors.Bip39.
	ErrRecoveredChecksumInvalid = &SchiavinatoError{
		Code:    "RECOVERED_CHECKSUM_INVALID",
		Message: "recovered mnemonic failed its own BIP39 checksum",
	}

	// ErrDecryptionFailed is returned by internal/shareenc when a
	// passphrase-encrypted share payload cannot be decrypted.
	ErrDecryptionFailed = &SchiavinatoError{
		Code:    "DECRYPTION_FAILED",
		Message: "decryption failed - wrong passphrase or corrupted payload",
	}

	// ErrEntropySourceUnavailable is returned when the injected
	// randomness Source fails to produce bytes.
	ErrEntropySourceUnavailable = &SchiavinatoError{
		Code:    "ENTROPY_SOURCE_UNAVAILABLE",
		Message: "secure entropy source unavailable",
	}
)

// New creates a new SchiavinatoError with the given code and message.
func New(code, message string) *SchiavinatoError {
	return &SchiavinatoError{Code: code, Message: message}
}

// Wrap wraps an error with additional context, preserving the
// underlying SchiavinatoError's code/details/suggestion when present.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var se *SchiavinatoError
	if errors.As(err, &se) {
		return &SchiavinatoError{
			Code:       se.Code,
			Message:    fmt.Sprintf("%s: %s", msg, se.Message),
			Details:    se.Details,
			Suggestion: se.Suggestion,
			Cause:      err,
		}
	}

	return &SchiavinatoError{
		Code:    "GENERAL_ERROR",
		Message: msg,
		Cause:   err,
	}
}

// WithDetails returns a copy of err with Details replaced.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var se *SchiavinatoError
	if errors.As(err, &se) {
		return &SchiavinatoError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    details,
			Suggestion: se.Suggestion,
			Cause:      se.Cause,
		}
	}

	return &SchiavinatoError{
		Code:    "GENERAL_ERROR",
		Message: err.Error(),
		Details: details,
		Cause:   err,
	}
}

// WithSuggestion returns a copy of err with Suggestion replaced.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var se *SchiavinatoError
	if errors.As(err, &se) {
		return &SchiavinatoError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    se.Details,
			Suggestion: suggestion,
			Cause:      se.Cause,
		}
	}

	return &SchiavinatoError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Code returns the error code for an error, or "GENERAL_ERROR" if err
// is not (or does not wrap) a *SchiavinatoError.
func Code(err error) string {
	var se *SchiavinatoError
	if errors.As(err, &se) {
		return se.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
