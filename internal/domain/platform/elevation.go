package platform

import "fmt"

// ElevationError indicates the process lacks the rights to write into the
// ACT installation.
type ElevationError struct {
	OS OS
}

func (e *ElevationError) Error() string {
	return "administrator privileges are required"
}

// Suggestion returns an actionable hint for the operator.
func (e *ElevationError) Suggestion() string {
	if e.OS == OSWindows {
		return "Right-click the installer and choose \"Run as administrator\", or pass --skip-admin-check."
	}
	return "Run the installer with sudo, or pass --skip-admin-check."
}

// elevationCheck is replaced in tests.
var elevationCheck = isElevated

// IsElevated reports whether the process runs with administrator rights.
func IsElevated() (bool, error) {
	return elevationCheck()
}

// RequireElevation returns *ElevationError unless the process is elevated.
func (p *Platform) RequireElevation() error {
	ok, err := IsElevated()
	if err != nil {
		return fmt.Errorf("failed to query process privileges: %w", err)
	}
	if !ok {
		return &ElevationError{OS: p.os}
	}
	return nil
}
