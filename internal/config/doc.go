// Package config defines the format-agnostic bot configuration, the Loader
// interface that produces it, and the environment-only fallback used when no
// configuration file is given.
//
// Concrete file formats, such as HCL, are implemented in separate packages.
package config
