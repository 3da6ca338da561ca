package testutil

import (
	"fmt"
	"strings"
)

// DefaultPluginDir is the plugin folder used by built fixtures.
const DefaultPluginDir = `C:\ACT\Plugins`

// TestPlugin is one <Plugin /> entry of a built document.
type TestPlugin struct {
	Enabled bool
	Path    string
}

// ConfigBuilder builds ACT configuration documents for tests.
type ConfigBuilder struct {
	decoys  [][]TestPlugin
	plugins []TestPlugin
	compact bool
	bom     bool
}

// NewConfigBuilder creates a builder for a document with an empty plugin list.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithPlugin adds an entry to the authoritative (last) plugin list.
func (b *ConfigBuilder) WithPlugin(enabled bool, path string) *ConfigBuilder {
	b.plugins = append(b.plugins, TestPlugin{Enabled: enabled, Path: path})
	return b
}

// WithPluginFile adds an enabled entry for name inside DefaultPluginDir.
func (b *ConfigBuilder) WithPluginFile(name string) *ConfigBuilder {
	return b.WithPlugin(true, DefaultPluginDir+`\`+name)
}

// WithDependencies adds the parser and overlay plugins every install needs.
func (b *ConfigBuilder) WithDependencies() *ConfigBuilder {
	return b.WithPluginFile("FFXIV_ACT_Plugin.dll").WithPluginFile("OverlayPlugin.dll")
}

// WithDecoy adds an earlier, stale plugin list ahead of the real one.
func (b *ConfigBuilder) WithDecoy(plugins ...TestPlugin) *ConfigBuilder {
	b.decoys = append(b.decoys, plugins)
	return b
}

// Compact renders the plugin lists without line breaks or indentation.
func (b *ConfigBuilder) Compact() *ConfigBuilder {
	b.compact = true
	return b
}

// WithBOM prefixes the document with a UTF-8 byte order mark.
func (b *ConfigBuilder) WithBOM() *ConfigBuilder {
	b.bom = true
	return b
}

// Build renders the document.
func (b *ConfigBuilder) Build() string {
	var sb strings.Builder
	if b.bom {
		sb.WriteString("\ufeff")
	}
	sb.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<Config>\n")
	sb.WriteString("    <SettingsSerializer>\n        <Setting Name=\"ParseLogs\" Value=\"True\" />\n    </SettingsSerializer>\n")
	for _, decoy := range b.decoys {
		sb.WriteString("    ")
		sb.WriteString(b.pluginList(decoy))
		sb.WriteString("\n")
	}
	sb.WriteString("    ")
	sb.WriteString(b.pluginList(b.plugins))
	sb.WriteString("\n</Config>\n")
	return sb.String()
}

// PluginList renders just the authoritative <ActPlugins> element.
func (b *ConfigBuilder) PluginList() string {
	return b.pluginList(b.plugins)
}

func (b *ConfigBuilder) pluginList(plugins []TestPlugin) string {
	entryIndent, closeIndent := "\n        ", "\n    "
	if b.compact {
		entryIndent, closeIndent = "", ""
	}
	var sb strings.Builder
	sb.WriteString("<ActPlugins>")
	for _, p := range plugins {
		sb.WriteString(entryIndent)
		sb.WriteString(PluginElement(p.Enabled, p.Path))
	}
	sb.WriteString(closeIndent)
	sb.WriteString("</ActPlugins>")
	return sb.String()
}

// PluginElement renders a single <Plugin /> element the way ACT writes it.
func PluginElement(enabled bool, path string) string {
	flag := "False"
	if enabled {
		flag = "True"
	}
	return fmt.Sprintf(`<Plugin Enabled="%s" Path="%s" />`, flag, path)
}
