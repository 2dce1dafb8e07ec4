// Package config loads the interpreter shell's settings from TOML files.
//
// Settings are layered: compiled-in defaults, then the config file when one
// exists. A missing file is not an error; a malformed one is.
package config
