// Package errors provides sentinel errors and error types for the sanmove
// codec. It defines the failure discriminants the codec needs while allowing
// error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure classes of the codec.
// Use these with errors.Is() to classify failures.
var (
	// ErrInvalidNotation indicates malformed or unrecognized move text.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrNotAnAction indicates a board state with no move-ending glyph.
	ErrNotAnAction = errors.New("not a move-ending action")
)

// NotationError reports malformed or unrecognized notation text. It carries
// the offending text so callers can point at the bad token, and unwraps to
// ErrInvalidNotation.
type NotationError struct {
	Text string // The offending token, character, or value
}

// Error returns a message quoting the offending text.
func (e *NotationError) Error() string {
	return fmt.Sprintf("invalid notation %q", e.Text)
}

// Unwrap enables errors.Is(err, ErrInvalidNotation).
func (e *NotationError) Unwrap() error {
	return ErrInvalidNotation
}

// ActionError reports an attempt to convert a board state that carries no
// move-ending annotation (normal play, stalemate) into a move action.
// The rejected state is kept for inspection; it is typed as fmt.Stringer
// so this package stays import-free of the domain types it describes.
type ActionError struct {
	State fmt.Stringer // The rejected board state
}

// Error returns a message naming the rejected state.
func (e *ActionError) Error() string {
	return fmt.Sprintf("board state %v is not a move-ending action", e.State)
}

// Unwrap enables errors.Is(err, ErrNotAnAction).
func (e *ActionError) Unwrap() error {
	return ErrNotAnAction
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
