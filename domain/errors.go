package domain

import (
	"errors"
	"fmt"
)

var (
	ErrArtistNotFound      = errors.New("artist not found")
	ErrAlbumNotFound       = errors.New("album not found")
	ErrSongNotFound        = errors.New("song not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	ErrNotArtist = errors.New("artist profile not found")
	ErrNotOwner  = errors.New("album not found or does not belong to you")

	ErrUnsupportedCurrency = errors.New("unsupported base currency")

	// ErrPlanOrphaned means gateway plans were provisioned but the artist
	// document was never written. The gateway side needs manual reconciliation.
	ErrPlanOrphaned = errors.New("subscription plans provisioned but artist not persisted")

	ErrInvalidStatusChange = errors.New("transaction status can only change from pending")
)

// ValidationError marks client-side input problems. Handlers map it to a
// 400 response with the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
