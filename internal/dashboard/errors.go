package dashboard

import (
	"errors"

	"github.com/XavierBriggs/Janus/internal/navigator"
)

var (
	// ErrFutureDate is returned when stepping forward would pass today
	ErrFutureDate = navigator.ErrFutureDate

	ErrUnknownTab       = errors.New("unknown tab")
	ErrUnknownGame      = errors.New("unknown game")
	ErrUnknownContainer = errors.New("unknown container")
	ErrNothingToRetry   = errors.New("nothing to retry")
)
