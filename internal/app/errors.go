package app

import "errors"

var (
	// ErrInvalidCredentials is returned when the supplied credentials do not match.
	// This message is intended to be shown to end users and should not enable account enumeration.
	ErrInvalidCredentials = errors.New("Incorrect email address or password")

	// ErrUserDisabled is returned when an account is disabled.
	// Handlers should generally NOT expose this to clients to avoid account enumeration.
	ErrUserDisabled = errors.New("user disabled")

	ErrEmailAndPasswordRequired = errors.New("email and password required")
	ErrEmailAlreadyExists       = errors.New("email already exists")

	// ErrQuotaExceeded is returned when a free account has used up its
	// daily generation allowance.
	ErrQuotaExceeded = errors.New("daily generation limit reached")

	// ErrNotFound is returned when a generation record does not exist.
	ErrNotFound = errors.New("generation not found")

	// ErrForbidden is returned when a caller acts on a record it does
	// not own.
	ErrForbidden = errors.New("not the record owner")

	// ErrExportUnavailable is returned when object storage is not
	// configured.
	ErrExportUnavailable = errors.New("export storage not configured")
)
