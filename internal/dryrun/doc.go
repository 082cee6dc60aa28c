// Package dryrun computes what applying a template to a project directory
// would do, without writing anything.
//
// Two independent passes run over the template: PlanOperations classifies
// every template file as create or overwrite by target existence alone, and
// DetectConflicts reports the target root and every file whose content would
// change. Warnings and EstimateSize annotate the result.
package dryrun
