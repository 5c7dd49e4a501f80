package cli

import _ "embed"

//go:embed default_config.yaml
var embeddedDefaultConfigurationContent []byte

// EmbeddedDefaultConfiguration returns a copy of the built-in YAML defaults.
func EmbeddedDefaultConfiguration() []byte {
	return append([]byte(nil), embeddedDefaultConfigurationContent...)
}
