package config

import "go.uber.org/fx"

// Module provides *Config resolved from defaults, CONFIG_FILE, environment and flags.
var Module = fx.Provide(Load)
