// Package errors provides the failure taxonomy shared by every gateway
// client. The responder reduces each of these to a human-readable reply.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals that a collaborator answered but returned nothing
// useful (no articles, unknown word, unknown city, page missing).
var ErrNotFound = errors.New("resource not found")

// MissingCredentialError is returned before any network call when a keyed
// service has no API key configured. Expected in normal operation.
type MissingCredentialError struct {
	Service string
	EnvVar  string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: credential %s not set", e.Service, e.EnvVar)
}

// NewMissingCredential creates a MissingCredentialError for the given service.
func NewMissingCredential(service, envVar string) error {
	return &MissingCredentialError{Service: service, EnvVar: envVar}
}

// GatewayError wraps a transport, timeout or decode failure from one
// external service.
type GatewayError struct {
	Service string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s gateway: %v", e.Service, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewGatewayError wraps err as a failure of the named service.
func NewGatewayError(service string, err error) error {
	return &GatewayError{Service: service, Err: err}
}

// IsMissingCredential reports whether err is a missing-credential condition.
func IsMissingCredential(err error) bool {
	var mc *MissingCredentialError
	return errors.As(err, &mc)
}

// IsNotFound reports whether err is an empty-result condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTimeout reports whether err was caused by the call exceeding its
// deadline. Used for logging and metrics labels only; the reply string is
// the same as for any other transport failure.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Client.Timeout") ||
		strings.Contains(msg, "deadline") ||
		strings.Contains(msg, "timeout")
}
