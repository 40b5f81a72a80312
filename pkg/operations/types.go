package operations

import (
	"fmt"
	"os"
)

// Type is the kind of filesystem step.
type Type string

const (
	// Mkdir creates Target and any missing parents with Mode.
	Mkdir Type = "mkdir"
	// Symlink links Target to Source.
	Symlink Type = "symlink"
	// Backup copies Source to Target.
	Backup Type = "backup"
	// Remove deletes Target.
	Remove Type = "remove"
)

// Operation is one planned filesystem step.
type Operation struct {
	Type   Type
	Source string
	Target string
	Mode   os.FileMode
}

// Describe renders the operation for humans.
func (o Operation) Describe() string {
	switch o.Type {
	case Mkdir:
		return fmt.Sprintf("create directory %s", o.Target)
	case Symlink:
		return fmt.Sprintf("link %s -> %s", o.Target, o.Source)
	case Backup:
		return fmt.Sprintf("back up %s to %s", o.Source, o.Target)
	case Remove:
		return fmt.Sprintf("remove %s", o.Target)
	default:
		return fmt.Sprintf("%s %s", o.Type, o.Target)
	}
}
