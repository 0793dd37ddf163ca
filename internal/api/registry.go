// Package api exposes the planning core over HTTP: a registry of domains
// the service knows how to plan against, and handlers that wrap
// htn.FindPlan and htn.RunLazyLookahead.
package api

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dananau/gtpyhop-go/internal/domains/backtracking"
	"github.com/dananau/gtpyhop-go/internal/domains/blocksworld"
	"github.com/dananau/gtpyhop-go/internal/domains/logistics"
	"github.com/dananau/gtpyhop-go/internal/domains/travel"
	"github.com/dananau/gtpyhop-go/internal/htn"
)

// Entry is one domain the service can plan against: the htn.Domain itself,
// a factory for its prototypical initial state, and service-level defaults.
type Entry struct {
	Domain      *htn.Domain
	InitialFn   func() *htn.State
	Description string
	MaxTries    int
}

// Registry maintains the set of domains exposed by the service, keyed by
// name. Unlike htn.Domain's own process-wide "current domain" selector
// (which the planner itself consults), Registry is a thin directory on top
// of it: Use switches the current domain immediately before a plan/act call
// so concurrent requests against different domains don't see each other's
// partially-selected domain, matching spec's guidance that the core's
// global selector is non-reentrant and callers must serialize around it.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*Entry
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds (or replaces) a named domain entry.
func (r *Registry) Register(name string, entry *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = entry
}

// Get retrieves a domain entry by name.
func (r *Registry) Get(name string) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("domain not found: %s", name)
	}
	return entry, nil
}

// List returns the names of every registered domain, in registration order.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Use locks the registry and makes entry's domain the current htn domain,
// returning an unlock function the caller must defer. This is the
// serialization point mandated by the core's non-reentrant global domain
// selector: only one plan/act call may be in flight at a time across the
// whole service.
func (r *Registry) Use(entry *Entry) func() {
	r.mu.Lock()
	htn.UseDomain(entry.Domain)
	return r.mu.Unlock
}

// DefaultRegistry builds and registers the four example domains shipped
// with the service: travel, blocksworld, logistics, and backtracking.
func DefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.Register("travel", &Entry{
		Domain:      travel.NewDomain(),
		InitialFn:   travel.InitialState,
		Description: "Alice and Bob travel by foot or taxi to reach the park.",
		MaxTries:    htn.DefaultMaxTries,
	})
	registry.Register("blocksworld", &Entry{
		Domain:      blocksworld.NewDomain(),
		InitialFn:   blocksworld.SussmanAnomalyState,
		Description: "Classic blocks-world rearrangement, task- or goal-driven.",
		MaxTries:    htn.DefaultMaxTries,
	})
	registry.Register("logistics", &Entry{
		Domain:      logistics.NewDomain(),
		InitialFn:   logistics.InitialState,
		Description: "Move packages between locations by truck and airplane.",
		MaxTries:    htn.DefaultMaxTries,
	})
	registry.Register("backtracking", &Entry{
		Domain:      backtracking.NewDomain(),
		InitialFn:   backtracking.InitialState,
		Description: "Minimal domain exercising method and action backtracking.",
		MaxTries:    htn.DefaultMaxTries,
	})

	return registry
}

// Manifest mirrors a domains manifest YAML file: per-domain overrides for
// the built-in domains. Every built-in domain is exposed whether or not the
// manifest lists it.
type Manifest struct {
	Domains []DomainManifestEntry `yaml:"domains"`
}

// DomainManifestEntry holds one domain's overrides. ApplyManifest applies
// MaxTries only; Verbosity is parsed but not applied.
type DomainManifestEntry struct {
	Name      string `yaml:"name"`
	Verbosity int    `yaml:"verbosity"`
	MaxTries  int    `yaml:"max_tries"`
}

// LoadManifest reads and parses a domains manifest YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}
	return &manifest, nil
}

// ApplyManifest overrides MaxTries on registry entries named in m. Domains
// named in the manifest but not already registered are skipped; the
// manifest only tunes the built-in domains, it does not define new ones.
func (r *Registry) ApplyManifest(m *Manifest) {
	for _, d := range m.Domains {
		entry, err := r.Get(d.Name)
		if err != nil {
			continue
		}
		if d.MaxTries > 0 {
			entry.MaxTries = d.MaxTries
		}
	}
}
