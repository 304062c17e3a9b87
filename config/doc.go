// Package config reads the process configuration of lvrand runs from
// environment variables (prefix LVRAND_), after loading an optional .env
// file. Library packages never read the environment themselves; this package
// produces plain values that suite turns into generator options.
package config
