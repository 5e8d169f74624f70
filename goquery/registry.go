// Package goquery provides site adapters and the adapter registry built on
// CSS selector queries over parsed page snapshots.
package goquery

import (
	"sort"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

var _ mdminer.AdapterRegistry = (*Registry)(nil)

// Registry maps site identifiers to adapters. The set is closed: resolving
// an unknown site returns a typed error rather than panicking, so callers
// can surface it uniformly.
type Registry struct {
	adapters map[mdminer.Site]mdminer.Adapter
}

// NewRegistry creates a Registry holding the given adapters, keyed by
// their Site.
func NewRegistry(adapters ...mdminer.Adapter) *Registry {
	r := &Registry{adapters: make(map[mdminer.Site]mdminer.Adapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Site()] = a
	}
	return r
}

// NewDefaultRegistry creates a Registry with all supported site adapters.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		NewJuejinAdapter(),
		NewZhihuAdapter(),
		NewGithubAdapter(),
		NewOtherAdapter(),
	)
}

// Resolve returns the adapter for a site.
// Returns ENOTSUPPORTED for unknown sites.
func (r *Registry) Resolve(site mdminer.Site) (mdminer.Adapter, error) {
	adapter, ok := r.adapters[site]
	if !ok {
		return nil, mdminer.Errorf(mdminer.ENOTSUPPORTED, "site %q is not supported", site)
	}
	return adapter, nil
}

// List returns all registered sites in stable order.
func (r *Registry) List() []mdminer.Site {
	sites := make([]mdminer.Site, 0, len(r.adapters))
	for site := range r.adapters {
		sites = append(sites, site)
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i] < sites[j] })
	return sites
}
