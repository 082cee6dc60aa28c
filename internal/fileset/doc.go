// Package fileset answers the filesystem questions the template pipeline
// asks: does a path exist, is it a file, do two files hold the same bytes,
// and which entries live under a directory. All access goes through an
// afero.Fs so callers can substitute an in-memory filesystem.
//
// Every query is tolerant: a path that cannot be stat'ed or read (permission
// denied included) is reported as absent, unequal or empty rather than as an
// error.
package fileset
