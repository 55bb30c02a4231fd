// Package config loads and validates client configuration.
//
// Configuration is optional: every knob has a working default, so the client
// runs without any file present. A TOML file at ~/.config/nitpick/config.toml
// (or a path named by NITPICK_CONFIG) can override the daemon socket, the
// daemon executable, retry timing, and diagnostic settings. Note that the
// --config CLI flag is unrelated: it names the daemon-side lint config and is
// passed through on the wire untouched.
package config
