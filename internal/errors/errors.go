// internal/errors/errors.go
package errors

import "fmt"

// ErrInvalidLogin is returned when a GitHub login does not have the shape
// GitHub accepts for user names.
type ErrInvalidLogin struct {
	Login string
}

func (e *ErrInvalidLogin) Error() string {
	return fmt.Sprintf("invalid GitHub login: %q", e.Login)
}

// ErrProfileNotFound is returned when GitHub or the snapshot store has no
// record of the requested account.
type ErrProfileNotFound struct {
	Login string
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile %q not found", e.Login)
}
