package game

import "errors"

var (
	// ErrRuleViolation is wrapped by every error returned from Action.Verify.
	// The game is left unchanged when it is returned.
	ErrRuleViolation = errors.New("rule violation")

	// ErrInvalidConfig is wrapped by every construction error.
	ErrInvalidConfig = errors.New("invalid game configuration")
)
