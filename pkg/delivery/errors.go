package delivery

import (
	"errors"
	"fmt"
)

var (
	// ErrDeliveryFailed tags every failed delivery attempt.
	ErrDeliveryFailed = errors.New("delivery: failed to deliver message")
	// ErrInvalidConfig is returned when a deliverer is constructed with
	// incomplete configuration.
	ErrInvalidConfig = errors.New("delivery: invalid config")
	// ErrInvalidMode is returned for modes other than draft or send.
	ErrInvalidMode = errors.New("delivery: mode must be \"draft\" or \"send\"")
)

// Failure is the tagged result for a remote rejection: decided once at the
// provider boundary, inspectable downstream via errors.As.
type Failure struct {
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail"`
}

func (f *Failure) Error() string {
	return fmt.Sprintf("delivery failed with status %d: %s", f.StatusCode, f.Detail)
}

// Unwrap makes errors.Is(err, ErrDeliveryFailed) hold for every Failure.
func (f *Failure) Unwrap() error { return ErrDeliveryFailed }

// AsFailure extracts the *Failure wrapped anywhere in err, or nil.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}
