// Package operations plans and executes the filesystem side of installs:
// directories, symlinks and backups of files a link replaces.
//
// Planning inspects the filesystem and returns a list of Operations without
// changing anything. The Executor then runs the list through synthfs, rolling
// back completed steps if a later one fails.
package operations
