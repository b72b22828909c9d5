package domain

import "errors"

var (
	// ErrNotFound: the requested identity does not exist. Surfaced to the
	// admin caller as 404; never triggers collection-level fallback.
	ErrNotFound = errors.New("not found")

	// ErrInvalid wraps a validation failure; the write never reached the
	// store.
	ErrInvalid = errors.New("invalid input")

	// ErrUnauthorized is the gate's uniform rejection, regardless of which
	// check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMisconfigured: a required secret is absent. Reported distinctly
	// from a wrong credential.
	ErrMisconfigured = errors.New("server misconfiguration")

	// ErrStoreUnavailable: the row store is not configured or the write
	// could not be issued. Read paths absorb this via fallback; write paths
	// surface it.
	ErrStoreUnavailable = errors.New("store unavailable")
)
