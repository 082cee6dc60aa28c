// Package registry resolves template names to template directories, lists
// the templates available under a templates root, and copies templates into
// projects. Template lookups go through the name → directory map from the
// resolved configuration; names without a mapping are used as directory
// names directly.
package registry
