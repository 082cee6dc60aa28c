// Package cli defines the Cobra command tree for the templates CLI. Each file
// in this package registers one top-level command (list, use, dry-run, etc.)
// with the root command. Commands delegate to internal packages for the
// actual work and only handle flags, output formatting and confirmation.
package cli
