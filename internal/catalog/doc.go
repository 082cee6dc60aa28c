// Package catalog keeps a local clone of the upstream templates repository
// under ~/.templates-cli/templates-repo so commands can run outside a
// checkout of it. The clone is shallow and only the templates/ tree is
// checked out when git supports sparse checkouts.
package catalog
