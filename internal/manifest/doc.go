// Package manifest reads, validates and writes template manifests
// (.template-manifest.json). A manifest records a template's current version,
// its release history and descriptive metadata used by previews and listings.
// Validation runs against an embedded JSON Schema.
package manifest
