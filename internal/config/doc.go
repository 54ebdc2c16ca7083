// Package config loads the flactag command's TOML configuration: save
// behavior defaults and log level.
package config
