package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	pathutils "github.com/temirov/gitfacade/internal/utils/path"
)

const (
	defaultGitExecutableConstant            = "git"
	defaultHubExecutableConstant            = "hub"
	executablesConfigurationKeyConstant     = "executables"
	gitExecutableConfigurationKeyConstant   = "git"
	hubExecutableConfigurationKeyConstant   = "hub"
	runnerConfigurationKeyConstant          = "runner"
	runnerTimeoutConfigurationKeyConstant   = "timeout"
	runnerDirectoryConfigurationKeyConstant = "working_directory"
	configurationKeySeparatorConstant       = "."
	negativeTimeoutMessageConstant          = "runner timeout must not be negative"
	renderErrorTemplateConstant             = "failed to render configuration: %w"
)

// ErrNegativeTimeout indicates a configured runner timeout below zero.
var ErrNegativeTimeout = errors.New(negativeTimeoutMessageConstant)

var homeExpander = pathutils.NewHomeExpander()

// ExecutableResolver supplies the executable paths of the external tools.
type ExecutableResolver interface {
	GitExecutablePath() string
	HubExecutablePath() string
}

// Configuration groups executable paths and runner options.
type Configuration struct {
	Executables ExecutablesConfiguration `mapstructure:"executables" yaml:"executables"`
	Runner      RunnerConfiguration      `mapstructure:"runner" yaml:"runner"`
}

// ExecutablesConfiguration stores the paths of the git and hub executables.
type ExecutablesConfiguration struct {
	Git string `mapstructure:"git" yaml:"git"`
	Hub string `mapstructure:"hub" yaml:"hub"`
}

// RunnerConfiguration controls how commands are launched.
type RunnerConfiguration struct {
	Timeout          time.Duration `mapstructure:"timeout" yaml:"timeout"`
	WorkingDirectory string        `mapstructure:"working_directory" yaml:"working_directory"`
}

// DefaultConfiguration returns the configuration used when nothing is configured.
func DefaultConfiguration() Configuration {
	return Configuration{
		Executables: ExecutablesConfiguration{
			Git: defaultGitExecutableConstant,
			Hub: defaultHubExecutableConstant,
		},
	}
}

// DefaultConfigurationValues returns Viper defaults for the settings keys.
func DefaultConfigurationValues() map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		configurationKey(executablesConfigurationKeyConstant, gitExecutableConfigurationKeyConstant): defaults.Executables.Git,
		configurationKey(executablesConfigurationKeyConstant, hubExecutableConfigurationKeyConstant): defaults.Executables.Hub,
		configurationKey(runnerConfigurationKeyConstant, runnerTimeoutConfigurationKeyConstant):      defaults.Runner.Timeout,
		configurationKey(runnerConfigurationKeyConstant, runnerDirectoryConfigurationKeyConstant):    defaults.Runner.WorkingDirectory,
	}
}

// Sanitize trims values, expands a leading ~, and restores defaults for empty executable paths.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.Executables.Git = homeExpander.Expand(strings.TrimSpace(configuration.Executables.Git))
	sanitized.Executables.Hub = homeExpander.Expand(strings.TrimSpace(configuration.Executables.Hub))
	sanitized.Runner.WorkingDirectory = homeExpander.Expand(strings.TrimSpace(configuration.Runner.WorkingDirectory))
	if len(sanitized.Executables.Git) == 0 {
		sanitized.Executables.Git = defaultGitExecutableConstant
	}
	if len(sanitized.Executables.Hub) == 0 {
		sanitized.Executables.Hub = defaultHubExecutableConstant
	}
	return sanitized
}

// Validate reports configuration values that cannot be used.
func (configuration Configuration) Validate() error {
	if configuration.Runner.Timeout < 0 {
		return ErrNegativeTimeout
	}
	return nil
}

// GitExecutablePath returns the configured git executable or the default.
func (configuration Configuration) GitExecutablePath() string {
	return configuration.Sanitize().Executables.Git
}

// HubExecutablePath returns the configured hub executable or the default.
func (configuration Configuration) HubExecutablePath() string {
	return configuration.Sanitize().Executables.Hub
}

// RenderYAML renders the sanitized configuration as YAML.
func (configuration Configuration) RenderYAML() (string, error) {
	renderedConfiguration, marshalError := yaml.Marshal(configuration.Sanitize())
	if marshalError != nil {
		return "", fmt.Errorf(renderErrorTemplateConstant, marshalError)
	}
	return string(renderedConfiguration), nil
}

// ResolverFunc adapts a configuration accessor so paths are read at call time.
type ResolverFunc func() Configuration

// GitExecutablePath implements ExecutableResolver.
func (resolver ResolverFunc) GitExecutablePath() string {
	return resolver().GitExecutablePath()
}

// HubExecutablePath implements ExecutableResolver.
func (resolver ResolverFunc) HubExecutablePath() string {
	return resolver().HubExecutablePath()
}

func configurationKey(parts ...string) string {
	return strings.Join(parts, configurationKeySeparatorConstant)
}
