// Package config provides configuration structures and utilities for repocheck.
// It defines the run options populated from CLI flags, the optional YAML
// configuration file, and the URL list loader.
package config
