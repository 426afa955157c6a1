package core

import "errors"

var (
	// ErrEmptyMessage rejects a turn before any provider call or history
	// mutation happens.
	ErrEmptyMessage = errors.New("empty user message")

	// ErrProviderUnavailable marks a failed completion call. The whole turn
	// fails and nothing is committed to history.
	ErrProviderUnavailable = errors.New("completion provider unavailable")

	// ErrCredentialMissing is returned when no calendar credential can be
	// resolved. Fatal for the calendar capability only, the conversational
	// path keeps running in degraded mode.
	ErrCredentialMissing = errors.New("calendar credential missing")
)
