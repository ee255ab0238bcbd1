package rules

import "fmt"

// ConfigurationErrorKind represents the category of a configuration error.
type ConfigurationErrorKind int

const (
	// UnexpectedProperty indicates a property bag key the rule does not
	// recognize.
	UnexpectedProperty ConfigurationErrorKind = iota
	// InvalidPropertyValue indicates a recognized key holding a value of
	// the wrong shape or an invalid value.
	InvalidPropertyValue
)

// String returns the string representation of the error kind.
func (k ConfigurationErrorKind) String() string {
	switch k {
	case UnexpectedProperty:
		return "unexpected property"
	case InvalidPropertyValue:
		return "invalid property value"
	default:
		return "configuration error"
	}
}

// ConfigurationError describes why a property bag was rejected, carrying the
// offending key. Configuration is all-or-nothing: the first invalid entry
// found aborts the call and the rule's configuration is left unchanged.
type ConfigurationError struct {
	Kind   ConfigurationErrorKind
	Key    string
	Reason string // for InvalidPropertyValue; empty otherwise
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	switch e.Kind {
	case UnexpectedProperty:
		return fmt.Sprintf("unexpected field '%s'", e.Key)
	case InvalidPropertyValue:
		return fmt.Sprintf("invalid value for field '%s': %s", e.Key, e.Reason)
	default:
		return fmt.Sprintf("configuration error for field '%s'", e.Key)
	}
}

// NewUnexpectedProperty returns the error for a key the rule does not
// recognize.
func NewUnexpectedProperty(key string) *ConfigurationError {
	return &ConfigurationError{Kind: UnexpectedProperty, Key: key}
}

// NewInvalidPropertyValue returns the error for a recognized key holding an
// unacceptable value.
func NewInvalidPropertyValue(key, reason string) *ConfigurationError {
	return &ConfigurationError{Kind: InvalidPropertyValue, Key: key, Reason: reason}
}
