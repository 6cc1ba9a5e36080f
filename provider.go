package pricejobs

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"
)

//go:generate mockgen -package=pricejobs -destination=mock_provider_test.go -source=provider.go

const (
	// DefaultNamespace holds the built-in providers. Short provider ids are
	// looked up here first.
	DefaultNamespace = "builtin"
	// GlobalNamespace holds providers declared from outside the program.
	GlobalNamespace = ""
)

// Provider is a source of market prices.
type Provider interface {
	Name() string        // Name is the short id the provider is registered under.
	Description() string // Description is a one line human description.
}

// Registry looks providers up by namespace and id.
type Registry interface {
	Lookup(namespace, id string) (Provider, bool)
}

// ProviderRef is a provider resolved in a given namespace.
type ProviderRef struct {
	Namespace string
	ID        string
	Provider  Provider
}

// String returns the fully qualified provider name.
func (r ProviderRef) String() string {
	if r.Namespace == GlobalNamespace {
		return r.ID
	}
	return r.Namespace + "." + r.ID
}

func namespaceName(ns string) string {
	if ns == GlobalNamespace {
		return "global namespace"
	}
	return fmt.Sprintf("namespace %q", ns)
}

// Catalog is an in-memory Registry filled at startup.
// It is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	providers map[string]map[string]Provider // indexed by namespace then id.
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{providers: make(map[string]map[string]Provider)}
}

// Register adds p to the namespace under p.Name(). Registering the same id
// twice in a namespace is an error.
func (c *Catalog) Register(namespace string, p Provider) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := p.Name()
	if id == "" {
		return fmt.Errorf("cannot register a provider without a name in %s", namespaceName(namespace))
	}
	ns, ok := c.providers[namespace]
	if !ok {
		ns = make(map[string]Provider)
		c.providers[namespace] = ns
	}
	if _, exists := ns[id]; exists {
		return fmt.Errorf("provider %q is already registered in %s", id, namespaceName(namespace))
	}
	ns[id] = p
	return nil
}

// Lookup implements Registry.
func (c *Catalog) Lookup(namespace, id string) (Provider, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.providers[namespace][id]
	return p, ok
}

// All iterates over every registered provider, by namespace then id.
func (c *Catalog) All() iter.Seq[ProviderRef] {
	c.mu.RLock()
	var refs []ProviderRef
	for _, ns := range slices.Sorted(maps.Keys(c.providers)) {
		for _, id := range slices.Sorted(maps.Keys(c.providers[ns])) {
			refs = append(refs, ProviderRef{Namespace: ns, ID: id, Provider: c.providers[ns][id]})
		}
	}
	c.mu.RUnlock()
	return slices.Values(refs)
}

// Resolver turns the short provider ids found in source specifications into
// provider references.
type Resolver struct {
	Registry  Registry
	Namespace string // Namespace is searched before the global namespace.
}

// NewResolver returns a resolver looking into namespace first, then into the
// global namespace.
func NewResolver(registry Registry, namespace string) *Resolver {
	return &Resolver{Registry: registry, Namespace: namespace}
}

// ResolveProvider resolves id in the resolver namespace, then in the global
// namespace.
func (r *Resolver) ResolveProvider(id string) (ProviderRef, error) {
	tried := []string{r.Namespace}
	if r.Namespace != GlobalNamespace {
		tried = append(tried, GlobalNamespace)
	}
	for _, ns := range tried {
		if p, ok := r.Registry.Lookup(ns, id); ok {
			return ProviderRef{Namespace: ns, ID: id, Provider: p}, nil
		}
	}
	return ProviderRef{}, &ProviderNotFoundError{ID: id, Namespaces: tried}
}
