// Package config manages the hullo user configuration file.
//
// The file lives at os.UserConfigDir()/hullo.toml (override with the
// HULLO_CONFIG_PATH environment variable) and controls:
//   - Where the figure roster comes from (local file, GitHub repository)
//   - How loaded names are screened and capped
//   - Where log lines go
//
// Everything has a working default; a missing file is not an error.
package config
