// Package testutil provides helpers shared by package tests: building file
// trees on a filesystem.FS, a scripted prompter and link assertions.
//
// Tests should prefer filesystem.NewMemoryFS; only code that talks to the
// real OS (atomic writes, the synthfs executor, the exec runner) needs
// t.TempDir.
package testutil
