// Package installers holds the compiled-in list of installers. Each one is a
// cobra subcommand that patches fenced snippets into shell configs, links
// files out of the dotfiles checkout or bootstraps a tool.
//
// Installers never touch the filesystem directly: reads go through Env.FS,
// file edits through change.Confirm and links through an operations.Applier,
// so every step honours --dry-run and --yes the same way.
package installers
