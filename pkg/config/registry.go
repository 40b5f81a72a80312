package config

import (
	"regexp"
	"sort"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/fencing"
)

// Domain is one fenced snippet ready to install: a compiled fence plus the
// absolute source and target paths.
type Domain struct {
	Name      string
	Installer string
	Order     int
	Fence     *fencing.Fence
	Source    string
	Target    string
	Help      string
}

// Resolver turns configured paths into absolute ones.
type Resolver interface {
	InDotfiles(elem ...string) string
	Resolve(path string) string
}

// Registry is the read-only table of domains. Build it once with
// NewRegistry and pass it to whoever needs it.
type Registry struct {
	domains []Domain
	byName  map[string]int
}

// NewRegistry compiles every configured fence.
func NewRegistry(cfg *Config, r Resolver) (*Registry, error) {
	reg := &Registry{byName: make(map[string]int, len(cfg.Fences))}

	for name, fc := range cfg.Fences {
		start, end := fc.Start, fc.End
		if end == "" {
			end = start
		}
		if fc.Literal {
			start, end = regexp.QuoteMeta(start), regexp.QuoteMeta(end)
		}

		fence, err := fencing.NewFence(start, end)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidFence, "fence %q", name).
				WithDetail("fence", name)
		}

		reg.domains = append(reg.domains, Domain{
			Name:      name,
			Installer: fc.Installer,
			Order:     fc.Order,
			Fence:     fence,
			Source:    r.InDotfiles(fc.Source),
			Target:    r.Resolve(fc.Target),
			Help:      fc.Help,
		})
	}

	sort.Slice(reg.domains, func(i, j int) bool {
		a, b := reg.domains[i], reg.domains[j]
		if a.Installer != b.Installer {
			return a.Installer < b.Installer
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	})
	for i, d := range reg.domains {
		reg.byName[d.Name] = i
	}

	return reg, nil
}

// Get returns the named domain.
func (r *Registry) Get(name string) (Domain, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Domain{}, false
	}
	return r.domains[i], true
}

// All returns every domain grouped by installer, in install order.
func (r *Registry) All() []Domain {
	out := make([]Domain, len(r.domains))
	copy(out, r.domains)
	return out
}

// ForInstaller returns the domains owned by installer, in install order.
func (r *Registry) ForInstaller(installer string) []Domain {
	var out []Domain
	for _, d := range r.domains {
		if d.Installer == installer {
			out = append(out, d)
		}
	}
	return out
}

// Names returns the domain names owned by installer.
func (r *Registry) Names(installer string) []string {
	var out []string
	for _, d := range r.ForInstaller(installer) {
		out = append(out, d.Name)
	}
	return out
}
