package bankaccount

import "errors"

// Errors reported while reading, replaying or querying session scripts.
// Account operations themselves never fail.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidCommand = errors.New("invalid command")
	ErrUnknownAccount = errors.New("unknown account")
	ErrEmptyQuery     = errors.New("empty query")
)
