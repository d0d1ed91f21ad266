// Package config loads and validates mediasift configuration.
//
// Configuration is read from a TOML file (default ~/.config/mediasift/config.toml,
// or ./mediasift.toml) with repository defaults applied for absent keys. The
// loaded Config is treated as an immutable value: it is constructed once at
// startup and passed by reference into every component.
package config
