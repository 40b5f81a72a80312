// Package filesystem provides the filesystem used by dotinstall.
//
// NewOS is the real filesystem with atomic whole-file writes. NewAferoFS
// adapts an afero.Fs, which tests use with an in-memory backend.
package filesystem
