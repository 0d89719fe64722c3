package config

import "fmt"

// ConfigurationError reports an unsupported tax year or an unusable rate
// table. It is surfaced to the caller before any computation begins.
type ConfigurationError struct {
	Year   int
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Year != 0 {
		return fmt.Sprintf("configuration error for tax year %d: %s", e.Year, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// InvalidInputError reports a structurally impossible return record, such as
// negative withholding or a missing required spouse profile. No partial
// result is produced when one is raised.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input in %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
