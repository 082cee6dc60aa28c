// Package config manages user-level settings stored at
// ~/.templates-cli/config.yaml, the optional per-project .templates-cli.*
// file, and the resolution of the templates root every command works on.
package config
