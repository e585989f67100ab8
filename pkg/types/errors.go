// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ConfigurationError reports a required input that is absent or unusable.
// It aborts a run before any output is written.
type ConfigurationError struct {
	// Setting is the configuration key (e.g. "data.job_description").
	Setting string
	// Path is the offending filesystem path, if any.
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("configuration: %s: %v", e.Setting, e.Err)
	}
	return fmt.Sprintf("configuration: %s (%s): %v", e.Setting, e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
