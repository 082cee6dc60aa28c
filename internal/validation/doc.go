// Package validation checks a template against structural rules and reports
// how far a project created from a template has drifted from it.
//
// Missing files and folders are soft warnings; empty or unreadable config
// files and forbidden entries at the template root are errors. Health
// checks start from the template's validation errors and add config drift,
// missing top-level files and dependency differences.
package validation
