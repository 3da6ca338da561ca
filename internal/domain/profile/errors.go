package profile

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownProfileError indicates a profile name that is not defined.
type UnknownProfileError struct {
	Name      string
	Available []string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q", e.Name)
}

// Suggestion returns an actionable hint for the operator.
func (e *UnknownProfileError) Suggestion() string {
	return fmt.Sprintf("Choose one of: %s.", strings.Join(e.Available, ", "))
}

// UnsetVariableError indicates a path template refers to an environment
// variable that is not set.
type UnsetVariableError struct {
	Profile  string
	Variable string
}

func (e *UnsetVariableError) Error() string {
	return fmt.Sprintf("profile %s needs environment variable %s, which is not set", e.Profile, e.Variable)
}

// Suggestion returns an actionable hint for the operator.
func (e *UnsetVariableError) Suggestion() string {
	return "Pick a profile that matches your ACT installation, or define the paths explicitly in a settings file."
}

// SettingsError indicates a settings file could not be loaded.
type SettingsError struct {
	Path string
	Err  error
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("settings file %s: %v", e.Path, e.Err)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// IsUnknownProfile returns true if the error is an unknown profile name.
func IsUnknownProfile(err error) bool {
	var pErr *UnknownProfileError
	return errors.As(err, &pErr)
}

// IsSettingsError returns true if the error came from loading settings.
func IsSettingsError(err error) bool {
	var sErr *SettingsError
	return errors.As(err, &sErr)
}
