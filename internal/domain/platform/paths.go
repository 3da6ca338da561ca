package platform

import (
	"fmt"
	"regexp"
	"strings"
)

// windowsPathRegex matches Windows paths like C:\Users or C:/Users.
var windowsPathRegex = regexp.MustCompile(`^([A-Za-z]):[/\\](.*)$`)

// IsWindowsPath returns true if the path looks like a Windows path.
func IsWindowsPath(path string) bool {
	return windowsPathRegex.MatchString(path)
}

// IsWSLMountPath returns true if the path is a WSL Windows mount.
func IsWSLMountPath(path string) bool {
	if !strings.HasPrefix(path, "/mnt/") || len(path) < 6 {
		return false
	}
	if len(path) > 6 && path[6] != '/' {
		return false
	}
	c := path[5]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ToWSL converts a Windows path to its WSL equivalent.
// e.g., C:\Users\name -> /mnt/c/Users/name
func ToWSL(windowsPath string) (string, error) {
	if windowsPath == "" {
		return "", fmt.Errorf("empty path")
	}
	if strings.HasPrefix(windowsPath, "/") {
		return windowsPath, nil
	}

	matches := windowsPathRegex.FindStringSubmatch(windowsPath)
	if matches == nil {
		return "", fmt.Errorf("invalid Windows path: %s", windowsPath)
	}

	drive := strings.ToLower(matches[1])
	rest := strings.Trim(strings.ReplaceAll(matches[2], `\`, "/"), "/")
	if rest == "" {
		return "/mnt/" + drive, nil
	}
	return "/mnt/" + drive + "/" + rest, nil
}

// ToWindows converts a WSL mount path to its Windows equivalent.
// e.g., /mnt/c/Users/name -> C:\Users\name
func ToWindows(wslPath string) (string, error) {
	if !IsWSLMountPath(wslPath) {
		return "", fmt.Errorf("invalid WSL mount path: %s", wslPath)
	}
	drive := strings.ToUpper(wslPath[5:6])
	rest := strings.TrimPrefix(wslPath[6:], "/")
	return drive + `:\` + strings.ReplaceAll(rest, "/", `\`), nil
}

// LocalPath returns the path the current process must use to reach path.
// Under WSL, Windows drive paths are mapped onto /mnt; elsewhere path is
// returned unchanged.
func (p *Platform) LocalPath(path string) string {
	if !p.IsWSL() || !IsWindowsPath(path) {
		return path
	}
	local, err := ToWSL(path)
	if err != nil {
		return path
	}
	return local
}
