package internal

import "fmt"

// ConfigurationError reports a credential or endpoint missing after settings
// resolution. Not retryable; an operator has to fix the configuration.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s is not set", e.Field)
}

// ValidationError reports an empty or invalid caller-supplied field. Raised
// before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// ProviderError reports a non-2xx provider response. Status and Body are
// kept verbatim for diagnosis. The client never retries on its own.
type ProviderError struct {
	Operation string
	Status    int
	Body      string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: provider returned %d: %s", e.Operation, e.Status, e.Body)
}

// DeserializationError reports a 2xx response body that does not match the
// expected shape, which usually means the provider contract changed.
type DeserializationError struct {
	Operation string
	Err       error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("%s: unexpected response shape: %v", e.Operation, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
