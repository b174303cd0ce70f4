// Package configs embeds the configuration template written by
// `yfoil config init` at ~/.config/yfoil/config.yaml.
//
// Configuration hierarchy (see internal/config Load):
//  1. Hardcoded defaults (config.NewConfig)
//  2. User config (~/.config/yfoil/config.yaml)
//  3. Project config (.yfoil.yaml)
//  4. .env in the working directory
//  5. Environment variables (YFOIL_*)
//  6. Command-line flags
package configs

import _ "embed"

// UserConfigTemplate is the commented user configuration template.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string
