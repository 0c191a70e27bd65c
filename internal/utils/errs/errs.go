package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRequestNotFound    = errors.New("restoration request not found")
	ErrMaxRequestsReached = errors.New("server is busy (max active restorations limit)")
	ErrInvalidImageType   = errors.New("invalid image type (allowed: .png, .jpg, .jpeg, .webp)")
	ErrInvalidJobIndex    = errors.New("job index out of range")
	ErrRequestNotReady    = errors.New("restoration request is not finished")
	ErrNoSelection        = errors.New("no result selected for this request")

	ErrSubmissionFailed    = errors.New("submission to generation service failed")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrNetworkOrTimeout    = errors.New("network error or timeout")
	ErrJobFailed           = errors.New("generation job failed")
	ErrRequestCanceled     = errors.New("restoration request canceled")
	ErrMediaDeleted        = errors.New("media deleted upstream")
)

// CodeInsufficientCredits is the vendor error code for an exhausted
// credit balance.
const CodeInsufficientCredits = 4024

// Classify maps a vendor error payload onto one of the sentinel error
// kinds. Unrecognized payloads are wrapped with fallback.
func Classify(code int, message string, fallback error) error {
	lower := strings.ToLower(message)

	switch {
	case code == CodeInsufficientCredits || strings.Contains(lower, "insufficient"):
		return wrap(ErrInsufficientCredits, code, message)
	case strings.Contains(lower, "network") || strings.Contains(lower, "timeout"):
		return wrap(ErrNetworkOrTimeout, code, message)
	default:
		return wrap(fallback, code, message)
	}
}

func wrap(kind error, code int, message string) error {
	if message == "" {
		return kind
	}
	if code != 0 {
		return fmt.Errorf("%w: %s (code %d)", kind, message, code)
	}
	return fmt.Errorf("%w: %s", kind, message)
}
