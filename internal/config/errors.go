package config

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid setting. It is fatal at startup.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// AsConfigError unwraps an error into a ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var cErr *ConfigError
	if errors.As(err, &cErr) {
		return cErr, true
	}
	return nil, false
}
