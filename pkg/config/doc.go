// Package config loads dotinstall's configuration.
//
// Values are layered, later sources winning: the embedded defaults.toml,
// the user's config.toml, DOTINSTALL_* environment variables (a double
// underscore separates nesting levels, so DOTINSTALL_DIFF__CONTEXT sets
// diff.context) and finally command line overrides.
//
// The [fences] table becomes a Registry of Domains, built once at startup
// and passed to installers.
package config
