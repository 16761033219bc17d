package game

import "errors"

// Contract-violation sentinels. The engine is pure in-memory computation,
// so every failure is a caller bug surfaced synchronously; none are
// retryable. Wrap with fmt.Errorf("...: %w", ...) and match with errors.Is.
var (
	// ErrInvalidInput covers malformed arguments: negative amounts,
	// overdrawn decks, too few cards to rank.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIllegalAction covers actions outside the legal-move set or with
	// amounts outside the advertised range. Rejected actions leave the
	// table unchanged.
	ErrIllegalAction = errors.New("illegal action")

	// ErrInsufficientStack covers wagers exceeding a player's stack.
	ErrInsufficientStack = errors.New("insufficient stack")
)
