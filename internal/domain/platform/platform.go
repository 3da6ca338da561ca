// Package platform detects the operating system the installer runs on and
// the facts about it the installer depends on: whether it runs under WSL,
// how to open a URL, and whether the process is elevated.
package platform

import (
	"os"
	"runtime"
	"strings"
	"sync"
)

// OS represents the operating system type.
type OS string

const (
	// OSDarwin is macOS.
	OSDarwin OS = "darwin"
	// OSLinux is Linux (native or WSL).
	OSLinux OS = "linux"
	// OSWindows is Windows.
	OSWindows OS = "windows"
	// OSUnknown is an unsupported OS.
	OSUnknown OS = "unknown"
)

// Environment represents the execution environment.
type Environment string

const (
	// EnvNative is a native OS environment.
	EnvNative Environment = "native"
	// EnvWSL is Windows Subsystem for Linux, where the Windows drives are
	// mounted under /mnt.
	EnvWSL Environment = "wsl"
)

// Platform contains detected platform information.
type Platform struct {
	os          OS
	arch        string
	environment Environment
	windowsRoot string
}

var (
	detected     *Platform
	detectOnce   sync.Once
	testPlatform *Platform
)

// Detect returns the current platform information.
// Results are cached after the first call.
func Detect() *Platform {
	if testPlatform != nil {
		return testPlatform
	}

	detectOnce.Do(func() {
		detected = detect()
	})
	return detected
}

// SetTestPlatform sets a mock platform for testing.
// Pass nil to reset to actual detection.
func SetTestPlatform(p *Platform) {
	testPlatform = p
}

func detect() *Platform {
	p := &Platform{
		arch:        runtime.GOARCH,
		environment: EnvNative,
	}

	switch runtime.GOOS {
	case "darwin":
		p.os = OSDarwin
	case "linux":
		p.os = OSLinux
		if isWSL() {
			p.environment = EnvWSL
			p.windowsRoot = "/mnt"
		}
	case "windows":
		p.os = OSWindows
	default:
		p.os = OSUnknown
	}

	return p
}

// isWSL checks /proc/version for the Microsoft kernel signature.
func isWSL() bool {
	if os.Getenv("WSL_DISTRO_NAME") != "" {
		return true
	}
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

// OS returns the operating system.
func (p *Platform) OS() OS {
	return p.os
}

// Arch returns the architecture.
func (p *Platform) Arch() string {
	return p.arch
}

// Environment returns the execution environment.
func (p *Platform) Environment() Environment {
	return p.environment
}

// IsWindows returns true if running on Windows (native).
func (p *Platform) IsWindows() bool {
	return p.os == OSWindows
}

// IsWSL returns true if running in WSL.
func (p *Platform) IsWSL() bool {
	return p.environment == EnvWSL
}

// OpenerCommand returns the command that opens url in the default browser.
func (p *Platform) OpenerCommand(url string) (string, []string) {
	switch {
	case p.IsWindows():
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case p.IsWSL():
		return "rundll32.exe", []string{"url.dll,FileProtocolHandler", url}
	case p.os == OSDarwin:
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}

// String returns a human-readable description.
func (p *Platform) String() string {
	parts := []string{string(p.os), p.arch}
	if p.environment != EnvNative {
		parts = append(parts, string(p.environment))
	}
	return strings.Join(parts, "/")
}

// New creates a Platform with specified values (for testing).
func New(os OS, arch string, env Environment) *Platform {
	p := &Platform{
		os:          os,
		arch:        arch,
		environment: env,
	}
	if env == EnvWSL {
		p.windowsRoot = "/mnt"
	}
	return p
}
