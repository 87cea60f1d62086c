// Package filesystem provides filesystem implementations for shinydir.
//
// This package contains the FS interface used by the scanner and the
// executor, an implementation backed by the OS filesystem and one backed
// by afero for tests.
package filesystem
