// Package config handles clihelp configuration loading.
package config

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/r3d91ll/clihelp/pkg/entry"
	"github.com/r3d91ll/clihelp/pkg/errors"
	"github.com/r3d91ll/clihelp/pkg/help"
)

// Color modes accepted by help.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var colorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Config is the root configuration structure.
type Config struct {
	Help    HelpConfig    `yaml:"help"`
	Entries []entry.Entry `yaml:"entries"`
}

// HelpConfig holds page rendering settings.
type HelpConfig struct {
	Title    string `yaml:"title"`
	Name     string `yaml:"name"`
	MaxWidth int    `yaml:"max_width"`
	MaxLeft  int    `yaml:"max_left"`
	Mark     string `yaml:"mark"`
	Color    string `yaml:"color"`
}

// UseColor resolves the color mode. Auto colors only when output is a
// terminal.
func (h HelpConfig) UseColor(isTTY bool) bool {
	switch h.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}

// RendererOptions converts h into renderer options.
func (h HelpConfig) RendererOptions(isTTY bool) help.Options {
	return help.Options{
		Title:    h.Title,
		Name:     h.Name,
		MaxWidth: h.MaxWidth,
		MaxLeft:  h.MaxLeft,
		Mark:     h.Mark,
		Color:    h.UseColor(isTTY),
	}
}

// Registry builds an entry registry from the configured entries.
func (c *Config) Registry() (*entry.Registry, error) {
	reg, err := entry.NewRegistry(c.Entries...)
	if err != nil {
		return nil, errors.ConfigWrap(err, errors.ErrConfigInvalid, "invalid entry in configuration")
	}
	return reg, nil
}

// DefaultHelp returns the default page settings.
func DefaultHelp() HelpConfig {
	return HelpConfig{
		Title:    help.CLITitle,
		Name:     help.CLIName,
		MaxWidth: help.DefaultMaxWidth,
		MaxLeft:  help.DefaultMaxLeft,
		Mark:     help.DefaultMark,
		Color:    ColorAuto,
	}
}

// Default returns the default configuration. Its entries document clihelp
// itself and serve as a starting template.
func Default() *Config {
	return &Config{
		Help:    DefaultHelp(),
		Entries: help.Builtin(),
	}
}

// LoadOption configures Load.
type LoadOption func(*loader)

type loader struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger used while loading.
func WithLogger(log logrus.FieldLogger) LoadOption {
	return func(l *loader) {
		l.log = log
	}
}

func newLoader(opts []LoadOption) *loader {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	l := &loader{log: discard}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads and validates configuration from a file. Unset help fields
// keep their defaults; entries are taken from the file only.
func Load(path string, opts ...LoadOption) (*Config, error) {
	l := newLoader(opts)
	log := l.log.WithField("path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.ConfigWrap(err, errors.ErrConfigReadFailed, "failed to read configuration").
			WithContext("path", path)
	}

	cfg := &Config{Help: DefaultHelp()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		perr := errors.ConfigParseError(path, err)
		if line := extractYAMLErrorLine(err.Error()); line != "" {
			perr.WithContext("line", line)
		}
		return nil, perr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.WithField("entries", len(cfg.Entries)).Debug("configuration loaded")
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if not found.
func LoadOrDefault(path string, opts ...LoadOption) (*Config, error) {
	l := newLoader(opts)
	if path == "" {
		l.log.Debug("no configuration path, using defaults")
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		l.log.WithField("path", path).Debug("configuration not found, using defaults")
		return Default(), nil
	}

	return Load(path, opts...)
}

// Validate checks help settings and entries. All problems are reported in
// one CONFIG_INVALID error.
func (c *Config) Validate() error {
	var issues []string

	if c.Help.MaxWidth <= help.MinWidth {
		issues = append(issues, "help.max_width: must be greater than "+strconv.Itoa(help.MinWidth))
	}
	if c.Help.MaxLeft < help.MinLeft {
		issues = append(issues, "help.max_left: must be at least "+strconv.Itoa(help.MinLeft))
	}
	if c.Help.Color != "" && !isValidOption(c.Help.Color, colorModes) {
		issues = append(issues, "help.color: invalid value '"+c.Help.Color+"', must be one of: "+strings.Join(colorModes, ", "))
	}
	if len(c.Entries) == 0 {
		issues = append(issues, "entries: at least one entry is required")
	}

	var cause error
	if len(c.Entries) > 0 {
		if _, err := entry.NewRegistry(c.Entries...); err != nil {
			cause = err
			issues = append(issues, "entries: "+err.Error())
		}
	}

	if len(issues) == 0 {
		return nil
	}
	verr := errors.Configf(errors.ErrConfigInvalid, "invalid configuration: %d problem(s)", len(issues)).
		WithContext("issues", strings.Join(issues, "; "))
	if cause != nil {
		verr.WithCause(cause)
	}
	return verr
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigWrap(err, errors.ErrConfigWriteFailed, "failed to create config directory").
			WithContext("path", dir)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.ConfigWrap(err, errors.ErrConfigWriteFailed, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ConfigWrap(err, errors.ErrConfigWriteFailed, "failed to write config file").
			WithContext("path", path)
	}
	return nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	if _, err := os.Stat("clihelp.yaml"); err == nil {
		return "clihelp.yaml"
	}
	if _, err := os.Stat("config/clihelp.yaml"); err == nil {
		return "config/clihelp.yaml"
	}
	return "clihelp.yaml"
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return Default().Save(path)
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// extractYAMLErrorLine returns the first line number mentioned in a YAML
// error message.
func extractYAMLErrorLine(msg string) string {
	if m := yamlLinePattern.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}

func isValidOption(value string, validOptions []string) bool {
	for _, opt := range validOptions {
		if value == opt {
			return true
		}
	}
	return false
}
