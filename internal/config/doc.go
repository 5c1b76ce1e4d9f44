// Package config loads the optional launcher configuration file at
// ~/.config/pdfpc/config.toml.
//
// The file carries machine-level preferences (log level and format, rc file
// location, sidecar extension) plus a [defaults] section that seeds the
// lowest layer of option resolution. It is distinct from the pdfpcrc file,
// which the launcher itself rewrites; config.toml is only ever edited by the
// user.
package config
