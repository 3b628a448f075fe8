package engagement

import "errors"

var (
	// ErrAlreadyInitialized is returned by New if the store already holds
	// contract state.
	ErrAlreadyInitialized = errors.New("contract is already initialized")
	// ErrNotInitialized is returned by Open if the store holds no contract
	// state.
	ErrNotInitialized = errors.New("contract is not initialized")
	// ErrInvalidPortion is returned by Slash for portions above 1.
	ErrInvalidPortion = errors.New("invalid slashing portion")
	// ErrEmptyDenom is returned by New if no reward denom is configured.
	ErrEmptyDenom = errors.New("empty reward denom")
	// ErrDuplicateMember is returned by New if a member is listed twice.
	ErrDuplicateMember = errors.New("duplicated member")
)
