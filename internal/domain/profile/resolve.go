package profile

import (
	"fmt"
	"os"
	"strings"
)

// Env is the process environment a template is resolved against.
type Env struct {
	LookupEnv func(key string) (string, bool)
	// Getwd returns the working directory as ACT would spell it.
	Getwd func() (string, error)
}

// OSEnv returns the environment of the current process.
func OSEnv() Env {
	return Env{LookupEnv: os.LookupEnv, Getwd: os.Getwd}
}

// Resolved is a profile with concrete paths.
type Resolved struct {
	Name       string
	Title      string
	ConfigPath string
	PluginDir  string
	Notes      []string
}

// Resolve expands the profile's path templates.
func (p Profile) Resolve(env Env) (Resolved, error) {
	configPath, err := Expand(p.ConfigPath, env)
	if err != nil {
		return Resolved{}, p.wrap(err)
	}
	pluginDir, err := Expand(p.PluginDir, env)
	if err != nil {
		return Resolved{}, p.wrap(err)
	}
	if configPath == "" || pluginDir == "" {
		return Resolved{}, fmt.Errorf("profile %s must define both config_path and plugin_dir", p.Name)
	}
	return Resolved{
		Name:       p.Name,
		Title:      p.Title,
		ConfigPath: configPath,
		PluginDir:  pluginDir,
		Notes:      p.Notes,
	}, nil
}

func (p Profile) wrap(err error) error {
	if uv, ok := err.(*UnsetVariableError); ok {
		uv.Profile = p.Name
		return uv
	}
	return fmt.Errorf("profile %s: %w", p.Name, err)
}

// Expand substitutes ${VAR}, %VAR% and {cwd} in template. Once expanded, a
// path that contains a backslash is a Windows path and has every "/"
// turned into "\".
func Expand(template string, env Env) (string, error) {
	var b strings.Builder
	rest := template
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "{cwd}"):
			if env.Getwd == nil {
				return "", fmt.Errorf("working directory is unavailable")
			}
			wd, err := env.Getwd()
			if err != nil {
				return "", fmt.Errorf("failed to get working directory: %w", err)
			}
			b.WriteString(strings.TrimRight(wd, `\/`))
			rest = rest[len("{cwd}"):]
		case strings.HasPrefix(rest, "${"):
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				b.WriteString(rest)
				rest = ""
				continue
			}
			value, err := lookup(env, rest[2:end])
			if err != nil {
				return "", err
			}
			b.WriteString(value)
			rest = rest[end+1:]
		case rest[0] == '%':
			end := strings.IndexByte(rest[1:], '%')
			if end <= 0 || strings.ContainsAny(rest[1:end+1], `\/ `) {
				b.WriteByte('%')
				rest = rest[1:]
				continue
			}
			value, err := lookup(env, rest[1:end+1])
			if err != nil {
				return "", err
			}
			b.WriteString(value)
			rest = rest[end+2:]
		default:
			b.WriteByte(rest[0])
			rest = rest[1:]
		}
	}

	out := b.String()
	if strings.Contains(out, `\`) {
		out = strings.ReplaceAll(out, "/", `\`)
	}
	return out, nil
}

func lookup(env Env, key string) (string, error) {
	if env.LookupEnv == nil {
		return "", &UnsetVariableError{Variable: key}
	}
	value, ok := env.LookupEnv(key)
	if !ok || value == "" {
		return "", &UnsetVariableError{Variable: key}
	}
	return strings.TrimRight(value, `\/`), nil
}
